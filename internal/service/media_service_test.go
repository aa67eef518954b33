package service

import (
	"Beacon/internal/api/dto"
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func pngBase64(t *testing.T, w, h int) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestMediaUpload_DataURL(t *testing.T) {
	svc := NewMediaService()
	payload := pngBase64(t, 4, 3)

	media, err := svc.Upload(context.Background(), &dto.MediaUploadDTO{
		Image: "data:image/png;base64," + payload,
	})
	require.NoError(t, err)
	require.Equal(t, 4, media.Width)
	require.Equal(t, 3, media.Height)
	require.Equal(t, "png", media.Format)
	require.Equal(t, "data:image/png;base64,"+payload, media.URL)
}

func TestMediaUpload_RawBase64(t *testing.T) {
	svc := NewMediaService()
	payload := pngBase64(t, 2, 2)

	media, err := svc.Upload(context.Background(), &dto.MediaUploadDTO{Image: payload})
	require.NoError(t, err)
	require.Equal(t, "png", media.Format)
	require.Equal(t, "data:image/png;base64,"+payload, media.URL)
}

func TestMediaUpload_Invalid(t *testing.T) {
	svc := NewMediaService()

	_, err := svc.Upload(context.Background(), &dto.MediaUploadDTO{Image: "not base64 at all"})
	require.ErrorIs(t, err, ErrImageInvalid)

	// 合法 base64 但不是图片
	garbage := base64.StdEncoding.EncodeToString([]byte("plain text payload"))
	_, err = svc.Upload(context.Background(), &dto.MediaUploadDTO{Image: garbage})
	require.ErrorIs(t, err, ErrImageInvalid)

	// data URL 头缺少 base64 标记
	_, err = svc.Upload(context.Background(), &dto.MediaUploadDTO{Image: "data:image/png,rawdata"})
	require.ErrorIs(t, err, ErrImageInvalid)
}
