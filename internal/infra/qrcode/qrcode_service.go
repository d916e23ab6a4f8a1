package qrcode

import (
	"strconv"
	"strings"

	"postboard/config"
	"postboard/internal/domain/service"
	"postboard/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize  = 256
	defaultLevel = "M"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService builds the service from configuration. Share links use
// qrcode.baseUrl, falling back to http.publicUrl.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := defaultSize, defaultLevel, cfg.HTTP.PublicURL
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			level = cfg.QRCode.ErrorCorrectionLevel
		}
		if cfg.QRCode.BaseURL != "" {
			baseURL = cfg.QRCode.BaseURL
		}
	}

	return newQRCodeService(baseURL, size, level)
}

func newQRCodeService(baseURL string, size int, errorCorrectionLevel string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePostShareQR encodes the post's public URL as a PNG.
func (s *qrcodeService) GeneratePostShareQR(postID int64) ([]byte, error) {
	qrCode, err := qrcode.New(s.postURL(postID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) postURL(postID int64) string {
	return s.baseURL + "/posts/" + strconv.FormatInt(postID, 10)
}
