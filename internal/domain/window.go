package domain

// PushWindow добавляет значение в скользящее окно фиксированной емкости.
// Самое старое значение вытесняется первым (FIFO). Лимит применяется при
// каждой мутации, а не периодически.
func PushWindow(window []int, v int, capacity int) []int {
	window = append(window, v)
	if len(window) > capacity {
		window = window[len(window)-capacity:]
	}
	return window
}
