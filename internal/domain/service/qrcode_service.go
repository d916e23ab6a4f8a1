package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GeneratePostShareQR renders a PNG QR code that links to the post
	GeneratePostShareQR(postID int64) ([]byte, error)
}
