package normalizing

import (
	"strconv"
	"strings"

	shopifydomain "github.com/vfg2006/shopify-reports-api/infrastructure/integrator/shopify/domain"
)

// SafeFloat converte qualquer valor em float64. Valores nulos, vazios ou não
// numéricos viram 0.0 e nunca retornam erro.
func SafeFloat(value interface{}) float64 {
	switch v := value.(type) {
	case nil:
		return 0.0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0.0
		}
		return parsed
	default:
		return 0.0
	}
}

// SafeInt converte qualquer valor em int. Passa por float antes de truncar
// para tolerar strings numéricas como "3.0". Valores não numéricos viram 0.
func SafeInt(value interface{}) int {
	return int(SafeFloat(value))
}

// safeInt64 é usado para identificadores (que chegam como float64 do JSON).
func safeInt64(value interface{}) int64 {
	return int64(SafeFloat(value))
}

// str extrai um campo string do registro bruto; ausente ou de outro tipo
// vira string vazia.
func str(record shopifydomain.RawRecord, key string) string {
	if value, ok := record[key].(string); ok {
		return value
	}
	return ""
}

// boolean extrai um campo booleano; ausente ou de outro tipo vira false.
func boolean(record shopifydomain.RawRecord, key string) bool {
	if value, ok := record[key].(bool); ok {
		return value
	}
	return false
}

// nested extrai um objeto aninhado; ausente ou nulo vira nil.
func nested(record shopifydomain.RawRecord, key string) shopifydomain.RawRecord {
	if value, ok := record[key].(map[string]interface{}); ok {
		return shopifydomain.RawRecord(value)
	}
	return nil
}

// list extrai uma lista de objetos aninhados; ausente vira lista vazia.
func list(record shopifydomain.RawRecord, key string) []shopifydomain.RawRecord {
	items, ok := record[key].([]interface{})
	if !ok {
		return nil
	}

	records := make([]shopifydomain.RawRecord, 0, len(items))
	for _, item := range items {
		if nestedRecord, ok := item.(map[string]interface{}); ok {
			records = append(records, shopifydomain.RawRecord(nestedRecord))
		}
	}
	return records
}

// stringList extrai uma lista de strings; ausente vira lista vazia.
func stringList(record shopifydomain.RawRecord, key string) []string {
	items, ok := record[key].([]interface{})
	if !ok {
		return nil
	}

	values := make([]string, 0, len(items))
	for _, item := range items {
		if value, ok := item.(string); ok {
			values = append(values, value)
		}
	}
	return values
}
