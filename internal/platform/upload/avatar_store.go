// Package upload stores files uploaded through multipart forms.
package upload

import (
	"errors"
	"fmt"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// DiskStore saves uploads under a local directory served at urlPrefix.
type DiskStore struct {
	dir       string
	urlPrefix string
}

// NewDiskStore creates a DiskStore writing to dir. Saved files are referenced as urlPrefix/<name>.
func NewDiskStore(dir, urlPrefix string) *DiskStore {
	return &DiskStore{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}
}

// Dir returns the directory files are written to.
func (s *DiskStore) Dir() string { return s.dir }

// Save writes file under a fresh name and returns its URL path.
// The client file name is discarded except for its extension.
func (s *DiskStore) Save(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name := bson.NewObjectID().Hex() + strings.ToLower(filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("failed to save upload: %w", err)
	}
	return path.Join(s.urlPrefix, name), nil
}

// Remove deletes a file previously returned by Save. URLs outside urlPrefix are ignored.
func (s *DiskStore) Remove(url string) error {
	if path.Dir(url) != s.urlPrefix {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, path.Base(url)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove upload: %w", err)
	}
	return nil
}
