package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"universe_backend/internals/configs"
)

const maxImageWidth = 1280

// UploadedImage is what persists on the owning record.
type UploadedImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// UploadImage converts the incoming image to webp (resized when wider than
// maxImageWidth) and pushes it to Supabase storage, returning the public URL.
func UploadImage(folder string, fileHeader *multipart.FileHeader) (*UploadedImage, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode uploaded image: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}

	name := uniqueFilename(folder, fileHeader.Filename)
	if err := pushToStorage(name, "image/webp", buf); err != nil {
		return nil, err
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/image/%s",
		configs.SupabaseURL, url.PathEscape(name))

	return &UploadedImage{URL: publicURL, PublicID: name}, nil
}

func pushToStorage(name, contentType string, body *bytes.Buffer) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/image/%s",
		configs.SupabaseURL, url.PathEscape(name))

	req, err := http.NewRequest(http.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+configs.SupabaseKey)
	req.Header.Set("Content-Type", contentType)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("storage upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("storage upload failed with status %d", resp.StatusCode)
	}
	return nil
}

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func uniqueFilename(folder, original string) string {
	base := filenameSanitizer.ReplaceAllString(original, "_")
	base = strings.TrimSuffix(base, "."+extOf(base))
	return fmt.Sprintf("%s/%s_%s.webp", folder, uuid.NewString(), base)
}

func extOf(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-1]
}
