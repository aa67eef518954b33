package service

import (
	"Beacon/internal/api/dto"
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

type MediaService interface {
	Upload(ctx context.Context, req *dto.MediaUploadDTO) (*dto.MediaDTO, error)
}

type mediaServiceImpl struct{}

func NewMediaService() MediaService {
	return &mediaServiceImpl{}
}

// Upload 接收 data URL 或裸 base64，解码校验为合法图片后原样回显
func (s *mediaServiceImpl) Upload(ctx context.Context, req *dto.MediaUploadDTO) (*dto.MediaDTO, error) {
	payload := strings.TrimSpace(req.Image)
	mediaType := ""
	if strings.HasPrefix(payload, "data:") {
		head, body, ok := strings.Cut(payload, ",")
		if !ok || !strings.HasSuffix(head, ";base64") {
			return nil, ErrImageInvalid
		}
		mediaType = strings.TrimSuffix(strings.TrimPrefix(head, "data:"), ";base64")
		payload = body
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrImageInvalid
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrImageInvalid
	}

	format := detectFormat(raw)
	if mediaType == "" {
		mediaType = "image/" + format
	}

	bounds := img.Bounds()
	return &dto.MediaDTO{
		URL:    fmt.Sprintf("data:%s;base64,%s", mediaType, payload),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}, nil
}

func detectFormat(raw []byte) string {
	switch {
	case bytes.HasPrefix(raw, []byte("\x89PNG")):
		return "png"
	case bytes.HasPrefix(raw, []byte("\xff\xd8")):
		return "jpeg"
	case bytes.HasPrefix(raw, []byte("GIF8")):
		return "gif"
	case len(raw) > 11 && bytes.Equal(raw[8:12], []byte("WEBP")):
		return "webp"
	case bytes.HasPrefix(raw, []byte("BM")):
		return "bmp"
	default:
		return "unknown"
	}
}
