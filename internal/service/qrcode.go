package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type DefaultReceiptGenerator struct {
	BaseURL string
}

func (g DefaultReceiptGenerator) Generate(orderID int) ([]byte, error) {
	qrData := fmt.Sprintf("%s/orders/%d", g.BaseURL, orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

var _ ReceiptGenerator = (*DefaultReceiptGenerator)(nil)
