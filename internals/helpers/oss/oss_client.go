package helper

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/configs"
)

const maxUploadSize = int64(5 * 1024 * 1024)

type OSSService struct {
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	PublicBase string
	Prefix     string // mis. "hadirku"
}

// NewOSSServiceFromEnv membaca ALI_OSS_*; error kalau belum lengkap.
func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := strings.TrimSpace(configs.GetEnv("ALI_OSS_ENDPOINT"))
	ak := strings.TrimSpace(configs.GetEnv("ALI_OSS_ACCESS_KEY"))
	sk := strings.TrimSpace(configs.GetEnv("ALI_OSS_SECRET_KEY"))
	sts := strings.TrimSpace(configs.GetEnv("ALI_OSS_SECURITY_TOKEN"))
	bucketName := strings.TrimSpace(configs.GetEnv("ALI_OSS_BUCKET"))
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var opts []oss.ClientOption
	if sts != "" {
		opts = append(opts, oss.SecurityToken(sts))
	}
	client, err := oss.New(endpoint, ak, sk, opts...)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}
	log.Printf("[OSS] bucket %s siap (prefix=%q)", bucketName, prefix)

	return &OSSService{
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		PublicBase: strings.TrimSpace(configs.GetEnv("ALI_OSS_PUBLIC_BASE")),
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

// UploadAsWebP: recompress ke webp lalu PutObject; hasilnya public URL.
func (s *OSSService) UploadAsWebP(ctx context.Context, fh *multipart.FileHeader, dir string, opt WebPOptions) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}
	if fh.Size > maxUploadSize {
		return "", fiber.NewError(fiber.StatusRequestEntityTooLarge, fmt.Sprintf("file terlalu besar (maks %d MB)", maxUploadSize/1024/1024))
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	data, err := ConvertToWebP(src, fh.Filename, opt)
	if err != nil {
		if err == ErrUnsupportedImage {
			return "", fiber.NewError(fiber.StatusUnsupportedMediaType, err.Error())
		}
		return "", err
	}

	key := s.objectKey(dir, ".webp")
	err = s.Bucket.PutObject(key, bytes.NewReader(data),
		oss.WithContext(ctx),
		oss.ContentType("image/webp"),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	)
	if err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

// DeleteByPublicURL: best effort; URL di luar bucket ini diabaikan.
func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, ok := s.keyFromPublicURL(publicURL)
	if !ok {
		return nil
	}
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

func (s *OSSService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if s.PublicBase != "" {
		return strings.TrimRight(s.PublicBase, "/") + "/" + key
	}
	end := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

func (s *OSSService) keyFromPublicURL(u string) (string, bool) {
	base := s.PublicURL("x")
	base = strings.TrimSuffix(base, "x")
	if u == "" || !strings.HasPrefix(u, base) {
		return "", false
	}
	return strings.TrimPrefix(u, base), true
}

func (s *OSSService) objectKey(dir, ext string) string {
	parts := []string{}
	if s.Prefix != "" {
		parts = append(parts, s.Prefix)
	}
	if d := strings.Trim(dir, "/"); d != "" {
		parts = append(parts, d)
	}
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	name := time.Now().UTC().Format("20060102_150405") + "_" + hex.EncodeToString(b) + ext
	return strings.Join(append(parts, name), "/")
}
