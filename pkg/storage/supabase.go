package storage

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

// SupabaseStorage stores audio snippets attached to quotes in a Supabase
// bucket and hands back public URLs.
type SupabaseStorage struct {
	baseURL string
	apiKey  string
	bucket  string
	client  *storage.Client
}

func NewSupabaseStorage(baseURL, apiKey, bucket string) *SupabaseStorage {
	return &SupabaseStorage{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		bucket:  bucket,
		client:  storage.NewClient(strings.TrimRight(baseURL, "/")+"/storage/v1", apiKey, nil),
	}
}

// UploadAudio uploads raw audio bytes under audio/<filename> and returns the
// public URL of the object.
func (s *SupabaseStorage) UploadAudio(data []byte, filename string, contentType string) (string, error) {
	objectPath := fmt.Sprintf("audio/%s", filename)

	options := storage.FileOptions{
		ContentType: &contentType,
	}

	_, err := s.client.UploadFile(s.bucket, objectPath, bytes.NewBuffer(data), options)
	if err != nil {
		return "", err
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, objectPath)
	return publicURL, nil
}

// Delete removes the object behind a public URL. Unknown URLs are an error,
// an empty URL is a no-op.
func (s *SupabaseStorage) Delete(publicURL string) error {
	if publicURL == "" {
		return nil
	}

	idx := strings.Index(publicURL, "/storage/v1/object/")
	if idx == -1 {
		return fmt.Errorf("object path not found in URL: %s", publicURL)
	}

	rest := publicURL[idx+len("/storage/v1/object/"):]
	rest = strings.TrimPrefix(rest, "public/")

	parts := strings.SplitN(rest, "/", 2)
	if len(parts) < 2 {
		return fmt.Errorf("cannot parse bucket/object from URL: %s", publicURL)
	}
	bucket := parts[0]
	object := parts[1]
	if qIdx := strings.Index(object, "?"); qIdx != -1 {
		object = object[:qIdx]
	}
	if u, err := url.PathUnescape(object); err == nil {
		object = u
	}

	deleteURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, bucket, object)

	req, err := http.NewRequest(http.MethodDelete, deleteURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("apikey", s.apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("supabase delete failed: status=%d body=%s", resp.StatusCode, string(body))
	}
	return nil
}
