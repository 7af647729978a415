package domain

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSale      = errors.New("venda inválida")
	ErrInvalidSaleDate  = errors.New("data de venda inválida")
	ErrNegativeAmount   = errors.New("valor da venda não pode ser negativo")
	ErrInvalidQuantity  = errors.New("quantidade deve ser maior que zero")
	ErrMissingCustomer  = errors.New("cliente não informado")
	ErrMissingProduct   = errors.New("produto não informado")
	ErrInvalidEnumValue = errors.New("valor fora do domínio permitido")
)

// Sale é uma linha de venda (um item vendido para um cliente em uma data).
// A ordem dos campos é a ordem das colunas na exportação.
type Sale struct {
	CustomerID string          `json:"CLIENTE_ID"`
	Product    string          `json:"PRODUTO"`
	Category   string          `json:"CATEGORIA"`
	SaleDate   SaleDate        `json:"DATA_VENDA"`
	Amount     decimal.Decimal `json:"VALOR"`
	Quantity   int             `json:"QUANTIDADE"`
	Region     Region          `json:"REGIAO"`
	Channel    Channel         `json:"CANAL"`
	TaxID      string          `json:"CPF"`
	Sex        Sex             `json:"SEXO"`
	AgeBracket AgeBracket      `json:"FAIXA_ETARIA"`
}

// SaleFields lista as chaves dos campos na ordem declarada.
var SaleFields = []string{
	"CLIENTE_ID",
	"PRODUTO",
	"CATEGORIA",
	"DATA_VENDA",
	"VALOR",
	"QUANTIDADE",
	"REGIAO",
	"CANAL",
	"CPF",
	"SEXO",
	"FAIXA_ETARIA",
}

// Values retorna os valores da venda como texto, na mesma ordem de SaleFields
func (s Sale) Values() []string {
	return []string{
		s.CustomerID,
		s.Product,
		s.Category,
		s.SaleDate.String(),
		s.Amount.StringFixed(2),
		fmt.Sprintf("%d", s.Quantity),
		string(s.Region),
		string(s.Channel),
		s.TaxID,
		string(s.Sex),
		string(s.AgeBracket),
	}
}

// Validate garante as invariantes de uma venda na ingestão.
// O motor de análise assume que os registros já passaram por aqui.
func (s Sale) Validate() error {
	switch {
	case strings.TrimSpace(s.CustomerID) == "":
		return fmt.Errorf("%w: %w", ErrInvalidSale, ErrMissingCustomer)
	case strings.TrimSpace(s.Product) == "":
		return fmt.Errorf("%w: %w", ErrInvalidSale, ErrMissingProduct)
	case s.SaleDate.IsZero():
		return fmt.Errorf("%w: %w", ErrInvalidSale, ErrInvalidSaleDate)
	case s.Amount.IsNegative():
		return fmt.Errorf("%w: %w", ErrInvalidSale, ErrNegativeAmount)
	case s.Quantity <= 0:
		return fmt.Errorf("%w: %w", ErrInvalidSale, ErrInvalidQuantity)
	case !s.Region.Valid():
		return fmt.Errorf("%w: região %q: %w", ErrInvalidSale, s.Region, ErrInvalidEnumValue)
	case !s.Channel.Valid():
		return fmt.Errorf("%w: canal %q: %w", ErrInvalidSale, s.Channel, ErrInvalidEnumValue)
	case !s.Sex.Valid():
		return fmt.Errorf("%w: sexo %q: %w", ErrInvalidSale, s.Sex, ErrInvalidEnumValue)
	case !s.AgeBracket.Valid():
		return fmt.Errorf("%w: faixa etária %q: %w", ErrInvalidSale, s.AgeBracket, ErrInvalidEnumValue)
	}

	return nil
}

// SaleDate é uma data de calendário sem horário (YYYY-MM-DD)
type SaleDate struct {
	time.Time
}

func NewSaleDate(year int, month time.Month, day int) SaleDate {
	return SaleDate{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseSaleDate(value string) (SaleDate, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(value))
	if err != nil {
		return SaleDate{}, fmt.Errorf("%w: %q", ErrInvalidSaleDate, value)
	}

	return SaleDate{Time: t}, nil
}

func (d SaleDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(time.DateOnly)
}

// MonthKey retorna a chave ordenável do mês (YYYY-MM)
func (d SaleDate) MonthKey() string {
	return d.Format("2006-01")
}

// MonthLabel retorna o rótulo de exibição do mês (MM/YYYY)
func (d SaleDate) MonthLabel() string {
	return d.Format("01/2006")
}

func (d SaleDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *SaleDate) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*d = SaleDate{}
		return nil
	}

	// Aceita também timestamps completos vindos de APIs externas
	if len(value) > len(time.DateOnly) {
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidSaleDate, value)
		}
		*d = NewSaleDate(t.Year(), t.Month(), t.Day())
		return nil
	}

	parsed, err := ParseSaleDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan implementa sql.Scanner para colunas do tipo date
func (d *SaleDate) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		*d = NewSaleDate(v.Year(), v.Month(), v.Day())
		return nil
	case []byte:
		parsed, err := ParseSaleDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseSaleDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		*d = SaleDate{}
		return nil
	default:
		return fmt.Errorf("%w: tipo não suportado %T", ErrInvalidSaleDate, value)
	}
}

// Value implementa driver.Valuer
func (d SaleDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}
