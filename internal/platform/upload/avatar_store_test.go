package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func multipartContext(t *testing.T, field, filename string, content []byte) *gin.Context {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/users/edit", &body)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	return c
}

func TestDiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "/uploads/")

	c := multipartContext(t, "avatar", "../../Me.PNG", []byte("png-bytes"))
	fh, err := c.FormFile("avatar")
	require.NoError(t, err)

	url, err := store.Save(c, fh)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)
	assert.NotContains(t, url, "..")

	saved, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), saved)
	assert.Equal(t, dir, store.Dir())
}

func TestDiskStore_Save_UniqueNames(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "/uploads")

	c := multipartContext(t, "avatar", "a.jpg", []byte("x"))
	fh, err := c.FormFile("avatar")
	require.NoError(t, err)

	first, err := store.Save(c, fh)
	require.NoError(t, err)
	second, err := store.Save(c, fh)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDiskStore_Save_MissingDir(t *testing.T) {
	store := NewDiskStore(filepath.Join(t.TempDir(), "missing", "\x00bad"), "/uploads")

	c := multipartContext(t, "avatar", "a.jpg", []byte("x"))
	fh, err := c.FormFile("avatar")
	require.NoError(t, err)

	_, err = store.Save(c, fh)
	assert.Error(t, err)
}

func TestDiskStore_Remove(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "/uploads")

	c := multipartContext(t, "avatar", "a.jpg", []byte("x"))
	fh, err := c.FormFile("avatar")
	require.NoError(t, err)
	url, err := store.Save(c, fh)
	require.NoError(t, err)

	require.NoError(t, store.Remove(url))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(url)))
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.NoError(t, store.Remove(url), "already removed")
	assert.NoError(t, store.Remove("https://cdn.example/avatar.png"), "foreign urls are left alone")
}
