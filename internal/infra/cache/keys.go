package cache

import (
	"fmt"
	"time"
)

const searchPrefix = "search"

// SearchKey ключ результатов поиска на дату и окно
func SearchKey(date time.Time, start, end string) string {
	return fmt.Sprintf("%s:%s:%s-%s", searchPrefix, date.Format("2006-01-02"), start, end)
}

// SearchDatePattern шаблон всех ключей поиска на дату
func SearchDatePattern(date time.Time) string {
	return fmt.Sprintf("%s:%s:*", searchPrefix, date.Format("2006-01-02"))
}

// SearchAllPattern шаблон всех ключей поиска
func SearchAllPattern() string {
	return searchPrefix + ":*"
}
