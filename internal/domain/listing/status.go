package listing

import (
	"fmt"
	"strings"

	"ordem_servico/internal/domain/entities"
)

// StatusColor is the label color of a status cell.
type StatusColor string

const (
	ColorDefault StatusColor = "default"
	ColorGreen   StatusColor = "green"
	ColorRed     StatusColor = "red"
)

func ColorFor(s entities.OrderStatus) StatusColor {
	switch s {
	case entities.OrderStatusConcluido:
		return ColorGreen
	case entities.OrderStatusCancelado:
		return ColorRed
	default:
		return ColorDefault
	}
}

// Row is what the table shows for one order.
type Row struct {
	ID          string
	Number      string
	ClientName  string
	Status      entities.OrderStatus
	StatusColor StatusColor
	PDFURL      string
}

// PDFLink builds the static download link of an order's PDF.
func PDFLink(baseURL, number string) string {
	return fmt.Sprintf("%s/pdfs/OS_%s.pdf", strings.TrimRight(baseURL, "/"), number)
}

func RowFor(o entities.ServiceOrder, pdfBaseURL string) Row {
	return Row{
		ID:          o.ID,
		Number:      o.Number,
		ClientName:  o.ClientName,
		Status:      o.Status,
		StatusColor: ColorFor(o.Status),
		PDFURL:      PDFLink(pdfBaseURL, o.Number),
	}
}
