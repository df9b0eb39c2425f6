package formatting

import "fmt"

// FormatPrice форматирует цену из копеек в рубли.
// Копейки показываются только если они есть: 150000 -> "1500 ₽", 150050 -> "1500.50 ₽".
func FormatPrice(kopecks int) string {
	if kopecks == 0 {
		return "бесплатно"
	}
	if kopecks%100 == 0 {
		return fmt.Sprintf("%d ₽", kopecks/100)
	}
	return fmt.Sprintf("%d.%02d ₽", kopecks/100, kopecks%100)
}
