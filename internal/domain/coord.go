package domain

// Phys3 — вектор в физических координатах мира.
// Используется и как позиция (точка сбора здания), и как
// дельта перемещения (текущее направление юнита).
//
// Оси названы по сторонам света изометрической проекции:
// NE — северо-восток, SE — юго-восток, Up — высота.
type Phys3 struct {
	NE float64 `json:"ne"`
	SE float64 `json:"se"`
	Up float64 `json:"up"`
}

// Add возвращает сумму векторов.
func (p Phys3) Add(d Phys3) Phys3 {
	return Phys3{
		NE: p.NE + d.NE,
		SE: p.SE + d.SE,
		Up: p.Up + d.Up,
	}
}

// Scale возвращает вектор, умноженный на скаляр.
func (p Phys3) Scale(k float64) Phys3 {
	return Phys3{
		NE: p.NE * k,
		SE: p.SE * k,
		Up: p.Up * k,
	}
}

// IsZero проверяет, является ли вектор нулевым.
func (p Phys3) IsZero() bool {
	return p.NE == 0 && p.SE == 0 && p.Up == 0
}
