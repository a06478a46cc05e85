package uploads

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records uploads so tests can prove when the store was (not)
// touched.
type fakeStore struct {
	uploads []string // bucket/key
	types   []string
	fail    error
}

func (f *fakeStore) Upload(_ context.Context, bucket, key, contentType string, _ []byte) error {
	if f.fail != nil {
		return f.fail
	}
	f.uploads = append(f.uploads, bucket+"/"+key)
	f.types = append(f.types, contentType)
	return nil
}

func (f *fakeStore) PublicURL(bucket, key string) string {
	return "https://cdn.test/" + bucket + "/" + key
}

func TestStageRejectsOversizeFile(t *testing.T) {
	store := &fakeStore{}
	u := NewUploader(store, "restaurant-images")

	big := make([]byte, MaxImageSize+1)
	p, err := u.Stage("banner.jpg", "image/jpeg", big)

	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Nil(t, p)
	assert.Empty(t, store.uploads, "stage must never touch the store")
}

func TestStageRejectsNonImage(t *testing.T) {
	u := NewUploader(&fakeStore{}, "restaurant-images")

	p, err := u.Stage("menu.pdf", "application/pdf", []byte("%PDF"))

	assert.ErrorIs(t, err, ErrInvalidFileType)
	assert.Nil(t, p)
}

func TestStageBuildsLocalPreview(t *testing.T) {
	store := &fakeStore{}
	u := NewUploader(store, "menu-item-images")

	p, err := u.Stage("dish.png", "image/png", []byte{1, 2, 3})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(p.DataURL, "data:image/png;base64,"))
	assert.Empty(t, store.uploads, "preview must be local only")
}

func TestStageDataURL(t *testing.T) {
	u := NewUploader(&fakeStore{}, "menu-item-images")

	p, err := u.StageDataURL("dish.png", "data:image/png;base64,AQID")
	require.NoError(t, err)
	assert.Equal(t, "image/png", p.ContentType)
	assert.Equal(t, []byte{1, 2, 3}, p.Data)

	_, err = u.StageDataURL("dish.bin", "data:application/octet-stream;base64,AQID")
	assert.ErrorIs(t, err, ErrInvalidFileType)

	_, err = u.StageDataURL("dish.png", "not a data url")
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestCommitUploadsUnderFreshKey(t *testing.T) {
	store := &fakeStore{}
	u := NewUploader(store, "restaurant-images")

	p, err := u.Stage("banner.JPG", "image/jpeg", []byte{1})
	require.NoError(t, err)

	url, err := u.Commit(context.Background(), p)
	require.NoError(t, err)

	require.Len(t, store.uploads, 1)
	assert.True(t, strings.HasPrefix(store.uploads[0], "restaurant-images/"))
	assert.True(t, strings.HasSuffix(store.uploads[0], ".jpg"), "key keeps the lowercased extension")
	assert.Equal(t, "image/jpeg", store.types[0])
	assert.Equal(t, "https://cdn.test/"+store.uploads[0], url)
}

func TestCommitKeysDoNotCollide(t *testing.T) {
	store := &fakeStore{}
	u := NewUploader(store, "restaurant-images")

	p, _ := u.Stage("a.png", "image/png", []byte{1})
	_, err := u.Commit(context.Background(), p)
	require.NoError(t, err)
	_, err = u.Commit(context.Background(), p)
	require.NoError(t, err)

	require.Len(t, store.uploads, 2)
	assert.NotEqual(t, store.uploads[0], store.uploads[1])
}

func TestCommitWrapsStoreFailure(t *testing.T) {
	cause := errors.New("bucket gone")
	u := NewUploader(&fakeStore{fail: cause}, "restaurant-images")

	p, _ := u.Stage("a.png", "image/png", []byte{1})
	_, err := u.Commit(context.Background(), p)

	var upErr *UploadError
	require.ErrorAs(t, err, &upErr)
	assert.ErrorIs(t, err, cause)
}
