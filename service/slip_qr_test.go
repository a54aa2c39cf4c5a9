package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tlv(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

func kbankSlipPayload() string {
	inner := tlv("00", "000001") + tlv("01", "004") + tlv("02", "015222153348304988")
	return tlv("00", inner) + tlv("51", "TH") + tlv("91", "8A1F")
}

func TestParseSlipQR(t *testing.T) {
	qr, err := ParseSlipQR(kbankSlipPayload())
	require.NoError(t, err)

	assert.Equal(t, "004", qr.SendingBankCode)
	assert.Equal(t, "kbank", qr.SendingBank)
	assert.Equal(t, "015222153348304988", qr.TransactionRef)
	assert.Equal(t, "TH", qr.CountryCode)
	assert.Equal(t, kbankSlipPayload(), qr.Payload)
}

func TestParseSlipQRUnknownBank(t *testing.T) {
	inner := tlv("01", "999") + tlv("02", "12345")
	qr, err := ParseSlipQR(tlv("00", inner))
	require.NoError(t, err)
	assert.Equal(t, "unknown", qr.SendingBank)
}

func TestParseSlipQRRejects(t *testing.T) {
	for _, payload := range []string{
		"https://example.com/promptpay",
		tlv("51", "TH"),
		tlv("00", tlv("01", "004")),
		"0010abc",
		"00-1abc",
		"00+1abc",
	} {
		_, err := ParseSlipQR(payload)
		assert.ErrorIs(t, err, ErrNotSlipQR, "payload %q", payload)
	}
}

func TestDecodeSlipQRFromImage(t *testing.T) {
	matrix, err := qrcode.NewQRCodeWriter().Encode(kbankSlipPayload(), gozxing.BarcodeFormat_QR_CODE, 300, 300, nil)
	require.NoError(t, err)

	qr, err := DecodeSlipQR(matrix)
	require.NoError(t, err)
	assert.Equal(t, "015222153348304988", qr.TransactionRef)

	svc := newTestService(&fakePDFProcessor{}, &fakeRecognizer{name: "tesseract", detections: slipDetections})
	resp, err := svc.ScanBytes(context.Background(), pngBytes(t, matrix))
	require.NoError(t, err)
	require.NotNil(t, resp.SlipQR)
	assert.Equal(t, "kbank", resp.SlipQR.SendingBank)
}
