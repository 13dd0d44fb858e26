package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jmuir/stagedoor-api/internal/services"
	"github.com/jmuir/stagedoor-api/internal/store"
	"github.com/jmuir/stagedoor-api/pkg/dto"
	"github.com/jmuir/stagedoor-api/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupPhotoApp(st *testutil.MockStore, blobs *testutil.FakeBlobStore) http.Handler {
	profiles := services.NewProfileService(st)
	gallery := services.NewGalleryService(st)
	photos := services.NewPhotoService(blobs, profiles, gallery)
	handler := NewPhotoHandler(photos, profiles)

	app := drift.New()
	app.Post("/users/:id/photo", handler.Upload)
	app.Delete("/users/:id/photo", handler.Remove)
	return app
}

func multipartPhotoRequest(t *testing.T, path, filename, contentType, content string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="photo"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestPhotoHandler_Upload_Success(t *testing.T) {
	st := new(testutil.MockStore)
	blobs := testutil.NewFakeBlobStore()
	app := setupPhotoApp(st, blobs)
	ownerID := uuid.New()

	st.On("Get", mock.Anything, store.CollectionUsers, ownerID).
		Return(&store.Document{
			ID:         ownerID,
			Collection: store.CollectionUsers,
			Data:       []byte(`{"email":"cast@example.com"}`),
		}, nil)
	st.On("Update", mock.Anything, store.CollectionUsers, ownerID, mock.MatchedBy(func(fields map[string]any) bool {
		url, ok := fields["photoUrl"].(string)
		return ok && strings.Contains(url, "headshots/"+ownerID.String()+"/")
	})).Return(nil)

	req := multipartPhotoRequest(t, "/users/"+ownerID.String()+"/photo", "head shot.jpg", "image/jpeg", "jpegdata")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.UploadPhotoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.URL, "head_shot.jpg")
	assert.Len(t, blobs.Objects, 1)
	st.AssertExpectations(t)
}

func TestPhotoHandler_Upload_RejectsNonImage(t *testing.T) {
	st := new(testutil.MockStore)
	blobs := testutil.NewFakeBlobStore()
	app := setupPhotoApp(st, blobs)

	req := multipartPhotoRequest(t, "/users/"+uuid.New().String()+"/photo", "notes.txt", "text/plain", "hello")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, blobs.Objects)
}

func TestPhotoHandler_Upload_MissingFile(t *testing.T) {
	st := new(testutil.MockStore)
	app := setupPhotoApp(st, testutil.NewFakeBlobStore())

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/users/"+uuid.New().String()+"/photo", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPhotoHandler_Upload_UnknownUser(t *testing.T) {
	st := new(testutil.MockStore)
	app := setupPhotoApp(st, testutil.NewFakeBlobStore())
	ownerID := uuid.New()

	st.On("Get", mock.Anything, store.CollectionUsers, ownerID).
		Return(nil, store.ErrNotFound)

	req := multipartPhotoRequest(t, "/users/"+ownerID.String()+"/photo", "a.jpg", "image/jpeg", "data")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPhotoHandler_Remove_ClearsPhoto(t *testing.T) {
	st := new(testutil.MockStore)
	blobs := testutil.NewFakeBlobStore()
	app := setupPhotoApp(st, blobs)
	ownerID := uuid.New()
	url := blobs.URL("headshots/" + ownerID.String() + "/1-a.jpg")

	st.On("Get", mock.Anything, store.CollectionUsers, ownerID).
		Return(&store.Document{
			ID:         ownerID,
			Collection: store.CollectionUsers,
			Data:       []byte(`{"email":"cast@example.com","photoUrl":"` + url + `"}`),
		}, nil)
	st.On("Query", mock.Anything, store.CollectionCastPhotos,
		store.Filter{"castMemberId": ownerID, "url": url}).
		Return([]store.Document{}, nil)
	st.On("Update", mock.Anything, store.CollectionUsers, ownerID,
		map[string]any{"photoUrl": ""}).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/users/"+ownerID.String()+"/photo", nil)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	st.AssertExpectations(t)
}
