package translate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var _russian = map[string]string{
	// Parsing.
	"%v expects the form %v":              "%v ожидает форму %v",
	"<color>":                             "<цвет>",
	"<comparison> <keycap>...":            "<сравнение> <keycap>...",
	"<condition>":                         "<условие>",
	"<digit>...":                          "<цифра>...",
	"<direction>":                         "<направление>",
	"<keycap>...":                         "<keycap>...",
	"<register>":                          "<переменная>",
	"block end without an open block":     "конец блока без открытого блока",
	"block is not closed":                 "блок не закрыт командой 😐",
	"color":                               "цвет",
	"comparison":                          "сравнение",
	"condition":                           "условие",
	"digit":                               "цифра",
	"direction":                           "направление",
	"expected %v, got %v":                 "ожидалось: %v, получено: %v",
	"expected %v, got nothing":            "ожидалось: %v, получено: пусто",
	"jump outside the program":            "переход за пределы программы",
	"keycap digit":                        "keycap-цифра",
	"line %d %v":                          "строка %d: %v",
	"line %d '%v' %v":                     "строка %d '%v': %v",
	"number too large":                    "слишком большое число",
	"operand of the wrong kind":           "операнд неверного вида",
	"program compiled for another domain": "программа собрана для другого домена",
	"register":                            "переменная",
	"register %d":                         "переменная %d",
	"status invalid":                      "недопустимый статус",
	"unknown command":                     "неизвестная команда",
	"unknown command %v":                  "неизвестная команда: %v",
	"wrong number of operands":            "неверное число операндов",

	// Execution.
	"division by zero":           "деление на ноль",
	"input is empty":             "входные данные пусты",
	"input is not a number":      "входные данные не число",
	"input number out of range":  "входное число вне диапазона",
	"low bound above high bound": "нижняя граница больше верхней",
	"move into a blocked cell":   "недопустимый шаг",
	"output short write":         "неполная запись вывода",
	"scenario is not valid JSON": "сценарий не является корректным JSON",
	"value out of range":         "значение вне диапазона",
	"Position: [%d, %d]":         "Позиция: [%d, %d]",
	"Finish reached: %v":         "Финиш достигнут: %v",
	"Cell color: %v":             "Цвет клетки: %v",
	"Cell temperature: %d":       "Температура клетки: %d",
	"Check: mismatch (%v).":      "Проверка: не совпало (%v).",
	"yes":                        "да",
	"no":                         "нет",
	"empty":                      "пусто",

	// Reports, labs and the command line.
	"Done: all %d tests passed.":           "Готово: все %d тестов выполнены успешно.",
	"Done: ok %d, warnings %d, errors %d.": "Готово: успех %d, предупреждения %d, ошибки %d.",
	"Done: ok %d, warnings %d.":            "Готово: успех %d, предупреждения %d.",
	"Issues: %v":                           "Несовпадения: %v",
	"Test %v: %v, steps %d":                "Тест %v: %v, шаги %d",
	"Total steps: %d":                      "Суммарные шаги: %d",
	"lab file is not valid":                "файл лаборатории некорректен",
	"one of -c or -l is required":          "нужен один из флагов -c или -l",
	"test %v check: %v":                    "тест %v, проверка: %v",
	"unknown domain":                       "неизвестный домен",
	"unknown domain %q":                    "неизвестный домен %q",
	"unknown report format":                "неизвестный формат отчёта",
}

// registerCatalog adds the translations to the default catalog.
// English is registered as well, so it stays the preferred match.
func registerCatalog() {
	for key, msg := range _russian {
		_ = message.SetString(language.English, key, key)
		_ = message.SetString(language.Russian, key, msg)
	}
}
