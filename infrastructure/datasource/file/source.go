// Package file lê o conjunto de vendas de um arquivo local CSV (separado por ';') ou JSON.
package file

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrUnsupportedFormat = errors.New("formato de arquivo não suportado")
	ErrMissingColumn     = errors.New("coluna obrigatória ausente no cabeçalho")
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Name() string {
	return "arquivo:" + filepath.Base(s.path)
}

func (s *Source) Fetch(ctx context.Context) ([]domain.Sale, error) {
	format, err := FormatOf(s.path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir arquivo de vendas %s", s.path)
	}
	defer f.Close()

	records, err := Read(ctx, f, format)
	if err != nil {
		return nil, errors.Wrap(err, s.path)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"records": len(records),
		"path":    s.path,
	}).Infof("file: %d vendas lidas de %s", len(records), filepath.Base(s.path))

	return records, nil
}

// FormatOf deduz o formato pela extensão do arquivo
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "%q", filepath.Ext(path))
	}
}

// Read decodifica e valida as vendas de r no formato informado
func Read(ctx context.Context, r io.Reader, format string) ([]domain.Sale, error) {
	switch format {
	case FormatCSV:
		return ReadCSV(ctx, r)
	case FormatJSON:
		return ReadJSON(r)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}

// ReadCSV lê o mesmo layout gerado pela exportação: cabeçalho com as chaves dos campos e ';' como separador.
// A ordem das colunas é livre, mas todas as colunas precisam existir.
func ReadCSV(ctx context.Context, r io.Reader) ([]domain.Sale, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Sale{}, nil
		}
		return nil, errors.Wrap(err, "erro ao ler cabeçalho do CSV")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, field := range domain.SaleFields {
		if _, ok := columns[field]; !ok {
			return nil, errors.Wrap(ErrMissingColumn, field)
		}
	}

	records := make([]domain.Sale, 0)
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d", line)
		}

		sale, err := parseRow(columns, row)
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d", line)
		}

		records = append(records, sale)
	}

	return records, nil
}

func parseRow(columns map[string]int, row []string) (domain.Sale, error) {
	value := func(field string) string {
		idx := columns[field]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	date, err := domain.ParseSaleDate(value("DATA_VENDA"))
	if err != nil {
		return domain.Sale{}, err
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(value("VALOR"), ",", "."))
	if err != nil {
		return domain.Sale{}, errors.Wrapf(err, "VALOR %q", value("VALOR"))
	}

	quantity, err := strconv.Atoi(value("QUANTIDADE"))
	if err != nil {
		return domain.Sale{}, errors.Wrapf(err, "QUANTIDADE %q", value("QUANTIDADE"))
	}

	channel, err := domain.ParseChannel(value("CANAL"))
	if err != nil {
		return domain.Sale{}, errors.Wrapf(err, "CANAL %q", value("CANAL"))
	}

	region, err := domain.ParseRegion(value("REGIAO"))
	if err != nil {
		return domain.Sale{}, errors.Wrapf(err, "REGIAO %q", value("REGIAO"))
	}

	sex, err := domain.ParseSex(value("SEXO"))
	if err != nil {
		return domain.Sale{}, errors.Wrapf(err, "SEXO %q", value("SEXO"))
	}

	bracket, err := domain.ParseAgeBracket(value("FAIXA_ETARIA"))
	if err != nil {
		return domain.Sale{}, errors.Wrapf(err, "FAIXA_ETARIA %q", value("FAIXA_ETARIA"))
	}

	sale := domain.Sale{
		CustomerID: value("CLIENTE_ID"),
		Product:    value("PRODUTO"),
		Category:   value("CATEGORIA"),
		SaleDate:   date,
		Amount:     amount,
		Quantity:   quantity,
		Region:     region,
		Channel:    channel,
		TaxID:      value("CPF"),
		Sex:        sex,
		AgeBracket: bracket,
	}

	if err := sale.Validate(); err != nil {
		return domain.Sale{}, err
	}

	return sale, nil
}

// ReadJSON lê um array de vendas com as mesmas chaves da exportação
func ReadJSON(r io.Reader) ([]domain.Sale, error) {
	var records []domain.Sale
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Sale{}, nil
		}
		return nil, errors.Wrap(err, "erro ao decodificar JSON de vendas")
	}

	if records == nil {
		records = []domain.Sale{}
	}

	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, errors.Wrapf(err, "registro %d", i+1)
		}
	}

	return records, nil
}
