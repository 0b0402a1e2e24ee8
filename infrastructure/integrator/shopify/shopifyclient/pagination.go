package shopifyclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	shopifydomain "github.com/vfg2006/shopify-reports-api/infrastructure/integrator/shopify/domain"
)

const defaultRetryAfterSeconds = 5

// fetchAll percorre um endpoint de listagem paginado por cursor e devolve
// todos os registros acumulados. A falha é sempre suave: timeout, estouro de
// tentativas em erros 5xx ou um erro inesperado interrompem a paginação e
// devolvem o que já foi coletado, nunca um erro.
func (c *ShopifyClient) fetchAll(ctx context.Context, endpoint string, params url.Values) []shopifydomain.RawRecord {
	allRecords := make([]shopifydomain.RawRecord, 0)

	envelopeKey := envelopeKeyForEndpoint(endpoint)

	requestURL := endpoint
	if params != nil && len(params) > 0 {
		requestURL = endpoint + "?" + params.Encode()
	}

	serverAttempts := 0

	for requestURL != "" {
		req, err := c.newRequest(ctx, requestURL)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar a requisição de paginação")
			return allRecords
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if isTimeout(err) {
				logrus.WithFields(logrus.Fields{
					"url":     requestURL,
					"records": len(allRecords),
				}).Warn("Timeout durante a paginação. Retornando os registros coletados até aqui")
				return allRecords
			}

			logrus.WithError(err).WithField("url", requestURL).Error("Erro durante a paginação")
			return allRecords
		}

		// Rate limit: aguardar o Retry-After e repetir a MESMA requisição,
		// sem limite de tentativas
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
			resp.Body.Close()

			logrus.WithField("retry_after_seconds", retryAfter).Warn("Rate limit atingido, aguardando antes de repetir")
			c.sleepFn(time.Duration(retryAfter) * time.Second)
			continue
		}

		// Erros de servidor: backoff exponencial até o teto de tentativas
		if resp.StatusCode >= http.StatusInternalServerError {
			resp.Body.Close()
			serverAttempts++

			if serverAttempts > c.config.Shopify.MaxServerRetries {
				logrus.WithFields(logrus.Fields{
					"url":     requestURL,
					"status":  resp.StatusCode,
					"records": len(allRecords),
				}).Warn("Limite de tentativas excedido para erro de servidor. Abortando paginação")
				return allRecords
			}

			backoff := time.Duration(1<<serverAttempts) * time.Second
			logrus.WithFields(logrus.Fields{
				"status":  resp.StatusCode,
				"attempt": serverAttempts,
				"backoff": backoff.String(),
			}).Warn("Erro de servidor durante a paginação, aguardando backoff")
			c.sleepFn(backoff)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			logrus.WithFields(logrus.Fields{
				"url":    requestURL,
				"status": resp.StatusCode,
			}).Error("Resposta inesperada durante a paginação")
			return allRecords
		}

		var envelope map[string]interface{}
		err = json.NewDecoder(resp.Body).Decode(&envelope)
		linkHeader := resp.Header.Get("Link")
		resp.Body.Close()
		if err != nil {
			logrus.WithError(err).Error("Erro ao decodificar a resposta da paginação")
			return allRecords
		}

		// O envelope depende do endpoint ({"orders": [...]}, {"products":
		// [...]}): o nome do recurso na URL indica o campo esperado
		records := extractRecords(envelope, envelopeKey)
		allRecords = append(allRecords, records...)

		logrus.WithFields(logrus.Fields{
			"page_records": len(records),
			"total":        len(allRecords),
		}).Debug("Página de registros recebida")

		// Quando existe um próximo cursor, a URL já embute todos os
		// parâmetros; requisições seguintes não levam query params
		requestURL = nextPageURL(linkHeader)
		if requestURL != "" {
			c.sleepFn(time.Duration(c.config.Shopify.PageDelayMillis) * time.Millisecond)
		}
	}

	return allRecords
}

// envelopeKeyForEndpoint deriva o nome do campo de lista esperado no envelope
// a partir do último segmento do caminho ("/admin/orders.json" vira "orders").
func envelopeKeyForEndpoint(endpoint string) string {
	trimmed := endpoint
	if parsed, err := url.Parse(endpoint); err == nil {
		trimmed = parsed.Path
	}

	segments := strings.Split(strings.TrimSuffix(trimmed, "/"), "/")
	last := segments[len(segments)-1]

	return strings.TrimSuffix(last, ".json")
}

// extractRecords lê a lista do campo esperado do envelope e converte seus
// elementos em RawRecord. Quando o campo esperado não é uma lista, cai para o
// primeiro campo com valor de lista, em ordem alfabética de chave para manter
// o resultado determinístico.
func extractRecords(envelope map[string]interface{}, preferredKey string) []shopifydomain.RawRecord {
	if items, ok := envelope[preferredKey].([]interface{}); ok {
		return toRawRecords(items)
	}

	keys := make([]string, 0, len(envelope))
	for key := range envelope {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if items, ok := envelope[key].([]interface{}); ok {
			return toRawRecords(items)
		}
	}

	return nil
}

func toRawRecords(items []interface{}) []shopifydomain.RawRecord {
	records := make([]shopifydomain.RawRecord, 0, len(items))
	for _, item := range items {
		if record, ok := item.(map[string]interface{}); ok {
			records = append(records, shopifydomain.RawRecord(record))
		}
	}

	return records
}

// nextPageURL extrai a URL da relação rel="next" do cabeçalho Link.
func nextPageURL(linkHeader string) string {
	if !strings.Contains(linkHeader, `rel="next"`) {
		return ""
	}

	for _, link := range strings.Split(linkHeader, ",") {
		if !strings.Contains(link, `rel="next"`) {
			continue
		}

		urlPart := strings.SplitN(link, ";", 2)[0]
		return strings.Trim(strings.TrimSpace(urlPart), "<>")
	}

	return ""
}

func parseRetryAfter(header string) int {
	if header == "" {
		return defaultRetryAfterSeconds
	}

	seconds, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || seconds <= 0 {
		return defaultRetryAfterSeconds
	}

	return seconds
}

func isTimeout(err error) bool {
	if os.IsTimeout(err) {
		return true
	}

	// context.DeadlineExceeded chega embrulhado pelo *url.Error do http.Client
	return strings.Contains(err.Error(), context.DeadlineExceeded.Error())
}
