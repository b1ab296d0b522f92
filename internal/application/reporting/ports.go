package reporting

import (
	"time"

	"github.com/serranorte/serraria-api/internal/application/dto"
)

// PDFGenerator renderiza o relatório consolidado em PDF.
type PDFGenerator interface {
	GenerateSummary(summary dto.ReportSummaryResponse, lowStock []dto.StockItemResponse, generatedAt time.Time) ([]byte, error)
}
