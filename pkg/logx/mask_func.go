package logx

// MaskFunc функция маскирования как SensitiveDataMaskerInterface.
// Нулевое значение возвращает дамп без изменений.
type MaskFunc func(input []byte) []byte

func (f MaskFunc) Mask(input []byte) []byte {
	if f == nil {
		return input
	}

	return f(input)
}

// NewNopSensitiveDataMasker маскер без правил, используется когда
// маскирование себестоимости выключено.
func NewNopSensitiveDataMasker() MaskFunc {
	return nil
}
