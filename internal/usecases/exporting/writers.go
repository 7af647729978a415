// Package exporting gera os arquivos de exportação do painel: CSV, JSON e PDF
package exporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	CSVSeparator = ';'
	jsonIndent   = "  "
)

// WriteSalesCSV escreve o cabeçalho com as chaves dos campos e uma linha por venda, separadas por ';'
func WriteSalesCSV(w io.Writer, records []domain.Sale) error {
	writer := csv.NewWriter(w)
	writer.Comma = CSVSeparator

	if err := writer.Write(domain.SaleFields); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho do CSV: %w", err)
	}

	for i, record := range records {
		if err := writer.Write(record.Values()); err != nil {
			return fmt.Errorf("erro ao escrever linha %d do CSV: %w", i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteSalesJSON escreve as vendas como um array JSON indentado com dois espaços
func WriteSalesJSON(w io.Writer, records []domain.Sale) error {
	if records == nil {
		records = []domain.Sale{}
	}
	return writeIndented(w, records)
}

func WriteDashboardJSON(w io.Writer, dashboard *domain.Dashboard) error {
	return writeIndented(w, dashboard)
}

func writeIndented(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("erro ao serializar JSON: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("erro ao escrever JSON: %w", err)
	}
	return nil
}

// FileName monta o nome do arquivo de exportação: prefixo_YYYY-MM-DD.ext
func FileName(prefix string, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, now.Format(time.DateOnly), ext)
}
