// Package billing содержит чистые расчётные функции биллингового ядра:
// распределение минут сессии между участниками, расчёт платы за переработку
// дневного лимита и начисление гостевых сборов. Пакет не обращается
// к хранилищу и не содержит побочных эффектов.
package billing

// AllocateMinutes распределяет общее время сессии между count участниками
// в порядке их следования в списке. Каждый получает floor(total/count) минут,
// первые total mod count участников — на минуту больше, так что сумма
// распределённых минут всегда равна totalMinutes. При count < 1 возвращает nil.
func AllocateMinutes(totalMinutes, count int) []int {
	if count < 1 {
		return nil
	}

	base := totalMinutes / count
	remainder := totalMinutes - base*count

	allocated := make([]int, count)
	for i := range allocated {
		allocated[i] = base
		if i < remainder {
			allocated[i]++
		}
	}
	return allocated
}
