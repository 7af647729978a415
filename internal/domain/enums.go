package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Channel é o canal de venda
type Channel string

const (
	ChannelPDV       Channel = "PDV"
	ChannelEcommerce Channel = "ECOMMERCE"
	ChannelDelivery  Channel = "DELIVERY"
)

// Channels lista os canais na ordem de enumeração
var Channels = []Channel{ChannelPDV, ChannelEcommerce, ChannelDelivery}

func ParseChannel(value string) (Channel, error) {
	channel := Channel(strings.ToUpper(strings.TrimSpace(value)))
	if !channel.Valid() {
		return "", ErrInvalidEnumValue
	}
	return channel, nil
}

func (c Channel) Valid() bool {
	switch c {
	case ChannelPDV, ChannelEcommerce, ChannelDelivery:
		return true
	default:
		return false
	}
}

// Color retorna a cor usada nos gráficos de distribuição por canal
func (c Channel) Color() string {
	switch c {
	case ChannelPDV:
		return "#2563eb"
	case ChannelEcommerce:
		return "#059669"
	case ChannelDelivery:
		return "#d97706"
	default:
		return "#6b7280"
	}
}

func (c Channel) Label() string {
	switch c {
	case ChannelPDV:
		return "PDV"
	case ChannelEcommerce:
		return "E-commerce"
	case ChannelDelivery:
		return "Delivery"
	default:
		return string(c)
	}
}

// Region é a macrorregião brasileira da venda
type Region string

const (
	RegionNorte       Region = "Norte"
	RegionNordeste    Region = "Nordeste"
	RegionCentroOeste Region = "Centro-Oeste"
	RegionSudeste     Region = "Sudeste"
	RegionSul         Region = "Sul"
)

var Regions = []Region{RegionNorte, RegionNordeste, RegionCentroOeste, RegionSudeste, RegionSul}

func ParseRegion(value string) (Region, error) {
	trimmed := strings.TrimSpace(value)
	for _, region := range Regions {
		if strings.EqualFold(string(region), trimmed) {
			return region, nil
		}
	}
	return "", ErrInvalidEnumValue
}

func (r Region) Valid() bool {
	switch r {
	case RegionNorte, RegionNordeste, RegionCentroOeste, RegionSudeste, RegionSul:
		return true
	default:
		return false
	}
}

// Color retorna a cor do mapa de calor por região
func (r Region) Color() string {
	switch r {
	case RegionNorte:
		return "#3b82f6"
	case RegionNordeste:
		return "#2563eb"
	case RegionCentroOeste:
		return "#60a5fa"
	case RegionSudeste:
		return "#1d4ed8"
	case RegionSul:
		return "#93c5fd"
	default:
		return "#2563eb"
	}
}

// Sex é o sexo declarado do cliente
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

var Sexes = []Sex{SexMale, SexFemale}

func ParseSex(value string) (Sex, error) {
	sex := Sex(strings.ToUpper(strings.TrimSpace(value)))
	if !sex.Valid() {
		return "", ErrInvalidEnumValue
	}
	return sex, nil
}

func (s Sex) Valid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	default:
		return false
	}
}

func (s Sex) Label() string {
	switch s {
	case SexMale:
		return "Masculino"
	case SexFemale:
		return "Feminino"
	default:
		return string(s)
	}
}

func (s Sex) Color() string {
	switch s {
	case SexMale:
		return "#2563eb"
	case SexFemale:
		return "#d946ef"
	default:
		return "#6b7280"
	}
}

// AgeBracket é a faixa etária do cliente
type AgeBracket string

const (
	AgeBracket18To25 AgeBracket = "18-25"
	AgeBracket26To35 AgeBracket = "26-35"
	AgeBracket36To45 AgeBracket = "36-45"
	AgeBracket46To60 AgeBracket = "46-60"
	AgeBracket60Plus AgeBracket = "60+"
)

var AgeBrackets = []AgeBracket{AgeBracket18To25, AgeBracket26To35, AgeBracket36To45, AgeBracket46To60, AgeBracket60Plus}

func ParseAgeBracket(value string) (AgeBracket, error) {
	bracket := AgeBracket(strings.TrimSpace(value))
	if !bracket.Valid() {
		return "", ErrInvalidEnumValue
	}
	return bracket, nil
}

func (a AgeBracket) Valid() bool {
	switch a {
	case AgeBracket18To25, AgeBracket26To35, AgeBracket36To45, AgeBracket46To60, AgeBracket60Plus:
		return true
	default:
		return false
	}
}

// LowerBound é o limite inferior numérico da faixa, lido dos dígitos iniciais do rótulo.
// "60+" resulta em 60, portanto fica depois de "46-60".
func (a AgeBracket) LowerBound() int {
	digits := strings.TrimLeftFunc(string(a), unicode.IsSpace)
	end := strings.IndexFunc(digits, func(r rune) bool { return !unicode.IsDigit(r) })
	if end >= 0 {
		digits = digits[:end]
	}

	bound, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return bound
}

// unquoteEnum lê o texto JSON de um enum; null vira vazio
func unquoteEnum(data []byte) (string, error) {
	if string(data) == "null" {
		return "", nil
	}
	value, err := strconv.Unquote(string(data))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidEnumValue, data)
	}
	return value, nil
}

// UnmarshalJSON normaliza o canal como ParseChannel. Valores fora do domínio são mantidos
// para que Validate aponte o registro.
func (c *Channel) UnmarshalJSON(data []byte) error {
	value, err := unquoteEnum(data)
	if err != nil {
		return err
	}
	if parsed, err := ParseChannel(value); err == nil {
		*c = parsed
		return nil
	}
	*c = Channel(value)
	return nil
}

func (r *Region) UnmarshalJSON(data []byte) error {
	value, err := unquoteEnum(data)
	if err != nil {
		return err
	}
	if parsed, err := ParseRegion(value); err == nil {
		*r = parsed
		return nil
	}
	*r = Region(value)
	return nil
}

func (s *Sex) UnmarshalJSON(data []byte) error {
	value, err := unquoteEnum(data)
	if err != nil {
		return err
	}
	if parsed, err := ParseSex(value); err == nil {
		*s = parsed
		return nil
	}
	*s = Sex(value)
	return nil
}

func (a *AgeBracket) UnmarshalJSON(data []byte) error {
	value, err := unquoteEnum(data)
	if err != nil {
		return err
	}
	if parsed, err := ParseAgeBracket(value); err == nil {
		*a = parsed
		return nil
	}
	*a = AgeBracket(value)
	return nil
}
