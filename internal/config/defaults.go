package config

import (
	"time"

	"github.com/spf13/viper"
)

// Default values for optional configuration parameters.
const (
	DefaultLogLevel = "info"

	DefaultGeminiModel       = "gemini-2.0-flash"
	DefaultGeminiTemperature = 0.2
	DefaultGeminiTimeout     = 2 * time.Minute
	DefaultGeminiMaxRetries  = 2
	DefaultGeminiRetryDelay  = 5

	DefaultDBPath = ":memory:"
)

// DefaultPromptTemplate is the extraction prompt sent to the completion
// provider. The model is asked for a fixed four-line reply that the order
// extractor knows how to read back.
const DefaultPromptTemplate = `Ты помощник службы доставки. Из текста заявки извлеки:

1. Временной интервал доставки (или фразу: "в ближайшее время", "как можно скорее")
2. Адрес с номером дома
3. Номер телефона
4. Комментарий заказчика (если есть)

Формат ответа:
[временной интервал]
[адрес]
[номер телефона]
Комментарий заказчика: [если есть]

Вот заявка:
{text}`

// Default user-facing reply texts.
const (
	DefaultMsgIncomeCredited = "+%d BYN.\nДоход: %d BYN"
	DefaultMsgIncomeToday    = "Ваш доход за сегодня: %d BYN"
	DefaultMsgOrderAccepted  = "✅ Заказ принят в работу:\n%s"
	DefaultMsgOrderMissing   = "🚫 Заказ не принят в работу! Причина: Не хватает данных для осуществления доставки. Пожалуйста, уточните данные и пришлите заявку повторно.\n\nНе хватает: %s"
	DefaultMsgOrderBadPhone  = "🚫 Заказ не принят в работу! Причина: номер получателя не соответствует региону осуществления деятельности службы доставки. Пожалуйста, пришлите корректный номер телефона в формате +375XXXXXXXXX или своими силами осуществите связь водителя с получателем."
	DefaultMsgOrderError     = "⚠️ Ошибка при обработке заявки. Попробуйте ещё раз."
)

// setDefaults registers default values for everything except the secrets and
// the allowed-context table, which must be provided by the operator.
func setDefaults() {
	viper.SetDefault("log.level", DefaultLogLevel)
	viper.SetDefault("log.json", false)

	viper.SetDefault("gemini.model", DefaultGeminiModel)
	viper.SetDefault("gemini.temperature", DefaultGeminiTemperature)
	viper.SetDefault("gemini.instruction", DefaultPromptTemplate)
	viper.SetDefault("gemini.timeout", DefaultGeminiTimeout)
	viper.SetDefault("gemini.max_retries", DefaultGeminiMaxRetries)
	viper.SetDefault("gemini.retry_delay_seconds", DefaultGeminiRetryDelay)

	viper.SetDefault("database.path", DefaultDBPath)

	viper.SetDefault("scheduler.tasks.sql_maintenance.enabled", true)
	viper.SetDefault("scheduler.tasks.sql_maintenance.schedule", "0 0 4 * * *")

	viper.SetDefault("messages.income_credited", DefaultMsgIncomeCredited)
	viper.SetDefault("messages.income_today", DefaultMsgIncomeToday)
	viper.SetDefault("messages.order_accepted", DefaultMsgOrderAccepted)
	viper.SetDefault("messages.order_missing_data", DefaultMsgOrderMissing)
	viper.SetDefault("messages.order_bad_phone", DefaultMsgOrderBadPhone)
	viper.SetDefault("messages.order_error", DefaultMsgOrderError)
}
