package engine

import (
	"os"
	"strconv"
	"time"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно партии. Пока используется только для
	// идентификации партии в логах и реплеях.
	Seed    int64
	ShardID uint8

	// TickRate - частота симуляции, тиков в секунду.
	TickRate int

	// DataDir - каталог базы шаблонов юнитов.
	// Пустая строка отключает персистентность.
	DataDir string
}

// NewConfig создает конфиг по умолчанию (случайный сид, окружение)
func NewConfig() Config {
	cfg := Config{
		Seed:     time.Now().UnixNano(),
		ShardID:  0,
		TickRate: 10,
		DataDir:  os.Getenv("STRATEGOS_DATA"),
	}

	if v := os.Getenv("STRATEGOS_TICK_RATE"); v != "" {
		if rate, err := strconv.Atoi(v); err == nil && rate > 0 {
			cfg.TickRate = rate
		}
	}

	return cfg
}

// TickInterval возвращает длительность одного тика.
func (c Config) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 10
	}
	return time.Second / time.Duration(rate)
}
