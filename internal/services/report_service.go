package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"gorm.io/gorm"

	apperrors "atelier/internal/errors"
	"atelier/internal/models"
	"atelier/internal/report"
)

// reportService computes financial reports over the ledger.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// loadEntries fetches entries matching the filter, category preloaded,
// oldest first. The date range is applied in memory on the effective date.
func (s *reportService) loadEntries(filter EntryFilter) ([]models.LedgerEntry, error) {
	base := s.db.Model(&models.LedgerEntry{}).Preload("Category")
	if filter.Kind != nil {
		base = base.Where("kind = ?", *filter.Kind)
	}
	if filter.Status != nil {
		base = base.Where("status = ?", *filter.Status)
	}
	if filter.CategoryID != nil {
		base = base.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.PayeeID != nil {
		base = base.Where("payee_id = ?", *filter.PayeeID)
	}

	var entries []models.LedgerEntry
	if err := base.Order("due_date").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if filter.From != nil || filter.To != nil {
		entries = report.FilterRange(entries, filter.From, filter.To)
	}
	return entries, nil
}

// Summary returns totals for the filtered period alongside all-time totals.
func (s *reportService) Summary(filter EntryFilter) (*PeriodSummary, error) {
	period, err := s.loadEntries(filter)
	if err != nil {
		return nil, err
	}

	overallFilter := filter
	overallFilter.From = nil
	overallFilter.To = nil
	overall, err := s.loadEntries(overallFilter)
	if err != nil {
		return nil, err
	}

	return &PeriodSummary{
		Period:  report.Summarize(period),
		Overall: report.Summarize(overall),
	}, nil
}

// Monthly returns the chart series of per-month income, expense and balance.
func (s *reportService) Monthly(filter EntryFilter) (*ChartSeries, error) {
	entries, err := s.loadEntries(filter)
	if err != nil {
		return nil, err
	}

	buckets := report.MonthlyBuckets(entries, time.Now())
	series := &ChartSeries{
		Labels:  make([]string, 0, len(buckets)),
		Income:  make([]int64, 0, len(buckets)),
		Expense: make([]int64, 0, len(buckets)),
		Balance: make([]int64, 0, len(buckets)),
	}
	for _, b := range buckets {
		series.Labels = append(series.Labels, b.Label)
		series.Income = append(series.Income, b.Income)
		series.Expense = append(series.Expense, b.Expense)
		series.Balance = append(series.Balance, b.Balance)
	}
	return series, nil
}

// Categories returns the per-category breakdown for one entry kind.
func (s *reportService) Categories(filter EntryFilter, kind models.EntryKind) ([]report.CategoryBucket, error) {
	entries, err := s.loadEntries(filter)
	if err != nil {
		return nil, err
	}
	return report.CategoryBreakdown(entries, kind), nil
}

// MonthlyChartPNG renders the monthly income/expense series as a PNG.
// Returns nil bytes when there is nothing to plot.
func (s *reportService) MonthlyChartPNG(filter EntryFilter) ([]byte, error) {
	entries, err := s.loadEntries(filter)
	if err != nil {
		return nil, err
	}

	buckets := report.MonthlyBuckets(entries, time.Now())
	if len(buckets) == 0 {
		return nil, nil
	}
	if len(buckets) == 1 {
		// A single point cannot size the time axis; repeat it one month out.
		b := buckets[0]
		next := time.Date(b.Year, b.Month+1, 1, 0, 0, 0, 0, time.UTC)
		buckets = append(buckets, report.MonthBucket{
			Year:    next.Year(),
			Month:   next.Month(),
			Income:  b.Income,
			Expense: b.Expense,
			Balance: b.Balance,
		})
	}

	xValues := make([]time.Time, len(buckets))
	incomeValues := make([]float64, len(buckets))
	expenseValues := make([]float64, len(buckets))
	balanceValues := make([]float64, len(buckets))
	for i, b := range buckets {
		xValues[i] = time.Date(b.Year, b.Month, 1, 0, 0, 0, 0, time.UTC)
		incomeValues[i] = float64(b.Income) / 100
		expenseValues[i] = float64(b.Expense) / 100
		balanceValues[i] = float64(b.Balance) / 100
	}

	graph := chart.Chart{
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("Jan 2006"),
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Income",
				XValues: xValues,
				YValues: incomeValues,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2,
				},
			},
			chart.TimeSeries{
				Name:    "Expense",
				XValues: xValues,
				YValues: expenseValues,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 2,
				},
			},
			chart.TimeSeries{
				Name:    "Balance",
				XValues: xValues,
				YValues: balanceValues,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 3,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph, chart.Style{
			FontSize:  12,
			FontColor: chart.ColorBlack,
		}),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buf.Bytes(), nil
}

// ExportRows flattens the filtered entries into export lines, resolving
// payee names from the client and supplier registries.
func (s *reportService) ExportRows(filter EntryFilter) ([]ExportRow, error) {
	entries, err := s.loadEntries(filter)
	if err != nil {
		return nil, err
	}

	clientNames, supplierNames, err := s.payeeNames()
	if err != nil {
		return nil, err
	}

	rows := make([]ExportRow, 0, len(entries))
	for _, e := range entries {
		category := ""
		if e.Category != nil {
			category = e.Category.Name
		}
		payee := ""
		if e.PayeeID != nil && e.PayeeKind != nil {
			switch *e.PayeeKind {
			case models.PayeeKindClient:
				payee = clientNames[*e.PayeeID]
			case models.PayeeKindSupplier:
				payee = supplierNames[*e.PayeeID]
			}
		}
		rows = append(rows, ExportRow{
			Date:     e.EffectiveDate().Format("2006-01-02"),
			Kind:     string(e.Kind),
			Category: category,
			Payee:    payee,
			Amount:   e.Amount,
			Status:   string(e.Status),
		})
	}
	return rows, nil
}

func (s *reportService) payeeNames() (map[string]string, map[string]string, error) {
	var clients []models.Client
	if err := s.db.Select("id", "name").Find(&clients).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var suppliers []models.Supplier
	if err := s.db.Select("id", "name").Find(&suppliers).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	clientNames := make(map[string]string, len(clients))
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}
	supplierNames := make(map[string]string, len(suppliers))
	for _, sup := range suppliers {
		supplierNames[sup.ID] = sup.Name
	}
	return clientNames, supplierNames, nil
}
