package service

import (
	"errors"
	"fmt"
	"image"
	"log"
	"strconv"

	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/dto"
	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/utils/thaislip"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

var ErrNotSlipQR = errors.New("QR code is not a slip verification payload")

// Bank codes used by the Thai interbank slip verification QR.
var slipQRBanks = map[string]thaislip.BankCode{
	"002": thaislip.BankBBL,
	"004": thaislip.BankKBank,
	"006": thaislip.BankKTB,
	"011": thaislip.BankTTB,
	"014": thaislip.BankSCB,
	"025": thaislip.BankBAY,
}

// DecodeSlipQR finds and parses the verification QR printed on e-slips.
func DecodeSlipQR(img image.Image) (*dto.SlipQR, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	result, err := qrcode.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		return nil, fmt.Errorf("failed to decode QR code: %w", err)
	}

	payload := result.GetText()
	log.Printf("QR code decoded, length: %d bytes", len(payload))
	return ParseSlipQR(payload)
}

// ParseSlipQR reads the tag-length-value payload: tag 00 holds the API id
// (00), sending bank (01) and transaction reference (02); tag 51 is the
// country code.
func ParseSlipQR(payload string) (*dto.SlipQR, error) {
	fields, err := parseTLV(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSlipQR, err)
	}

	data, ok := fields["00"]
	if !ok {
		return nil, fmt.Errorf("%w: missing tag 00", ErrNotSlipQR)
	}
	sub, err := parseTLV(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSlipQR, err)
	}

	bankCode, ref := sub["01"], sub["02"]
	if bankCode == "" || ref == "" {
		return nil, fmt.Errorf("%w: missing bank or reference", ErrNotSlipQR)
	}

	bank, ok := slipQRBanks[bankCode]
	if !ok {
		bank = thaislip.BankUnknown
	}

	return &dto.SlipQR{
		Payload:         payload,
		SendingBankCode: bankCode,
		SendingBank:     string(bank),
		TransactionRef:  ref,
		CountryCode:     fields["51"],
	}, nil
}

// parseTLV splits a payload of two-digit tags and two-digit lengths.
func parseTLV(s string) (map[string]string, error) {
	fields := make(map[string]string)
	for i := 0; i < len(s); {
		if i+4 > len(s) {
			return nil, fmt.Errorf("truncated field at offset %d", i)
		}
		tag, length := s[i:i+2], s[i+2:i+4]
		if !isDigits(length) {
			return nil, fmt.Errorf("invalid length %q for tag %s", length, tag)
		}
		n, _ := strconv.Atoi(length)
		i += 4
		if i+n > len(s) {
			return nil, fmt.Errorf("tag %s overruns payload", tag)
		}
		fields[tag] = s[i : i+n]
		i += n
	}
	return fields, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
