package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cartdesk-backend/internal/domain"
	"cartdesk-backend/internal/repository"
	"cartdesk-backend/internal/service"
	"github.com/xuri/excelize/v2"
)

func (h CashHandler) export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	from, to, err := parseDateRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.Repo.List(r.Context(), repository.ListCashFilter{From: from, To: to, Limit: 2000})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	filenameSuffix := time.Now().Format("20060102_150405")
	if from != nil && to != nil {
		filenameSuffix = fmt.Sprintf("%s_%s", from.Format("20060102"), to.Format("20060102"))
	}

	switch format {
	case "csv":
		data, err := exportCashCSV(items)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"cash_%s.csv\"", filenameSuffix))
		_, _ = w.Write(data)
	case "xlsx", "excel":
		data, err := exportCashXLSX(items)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"cash_%s.xlsx\"", filenameSuffix))
		_, _ = w.Write(data)
	default:
		writeError(w, http.StatusBadRequest, "invalid format (use csv or xlsx)")
	}
}

func exportCashCSV(items []domain.CashSession) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"id", "date", "opening_total", "closing_total", "stall_fee", "payouts", "net_cash", "notes"})
	for _, s := range items {
		_ = w.Write([]string{
			strconv.FormatInt(s.ID, 10),
			s.SessionDate.Format(dateLayout),
			centsString(s.OpeningTotal.Amount),
			centsString(s.ClosingTotal.Amount),
			centsString(s.StallFee.Amount),
			centsString(s.Payouts.Amount),
			centsString(service.SessionNetCash(s).Amount),
			s.Notes,
		})
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func exportCashXLSX(items []domain.CashSession) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Cash Sessions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	header := []string{"ID", "Date", "Opening", "Closing", "Stall Fee", "Payouts", "Net Cash", "Notes"}
	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for row, s := range items {
		values := []any{
			s.ID,
			s.SessionDate.Format(dateLayout),
			centsString(s.OpeningTotal.Amount),
			centsString(s.ClosingTotal.Amount),
			centsString(s.StallFee.Amount),
			centsString(s.Payouts.Amount),
			centsString(service.SessionNetCash(s).Amount),
			s.Notes,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 8)
	_ = f.SetColWidth(sheet, "B", "B", 12)
	_ = f.SetColWidth(sheet, "C", "G", 12)
	_ = f.SetColWidth(sheet, "H", "H", 32)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	_ = f.SetCellStyle(sheet, "A1", "H1", style)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// centsString renders integer cents as a decimal amount, e.g. 14500 -> "145.00".
func centsString(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
