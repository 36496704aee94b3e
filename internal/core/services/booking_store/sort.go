package booking_store

import "time"

type TimeSlice []time.Time

// quickSort: сортировка по возрастанию, равные элементы сохраняют порядок
func (s TimeSlice) quickSort() TimeSlice {
	if len(s) < 2 {
		return s
	}

	// Выбираем опорный элемент
	pivot := s[len(s)/2]

	// Разделяем слайс на три части
	less := TimeSlice{}
	equal := TimeSlice{}
	greater := TimeSlice{}

	for _, slot := range s {
		if slot.Before(pivot) {
			less = append(less, slot)
		} else if slot.Equal(pivot) {
			equal = append(equal, slot)
		} else {
			greater = append(greater, slot)
		}
	}

	// Рекурсивно сортируем подмассивы и объединяем их
	return append(append(less.quickSort(), equal...), greater.quickSort()...)
}

// SortSlots возвращает новый отсортированный слайс, исходный не меняется
func SortSlots(slots []time.Time) []time.Time {
	sorted := make(TimeSlice, len(slots))
	copy(sorted, slots)
	return sorted.quickSort()
}
