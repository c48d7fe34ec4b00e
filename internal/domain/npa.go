package domain

// NpaDocumentRecord - исходные данные по одному НПА.
// ImplementationRate может прийти извне, иначе вычисляется.
type NpaDocumentRecord struct {
	DocumentName       string   `json:"document_name"`
	ChangesCount       int      `json:"changes_count"`
	ImplementedCount   int      `json:"implemented_count"`
	ImplementationRate *float64 `json:"implementation_rate,omitempty"`
}

// Validate проверяет ограничения строки index
func (r NpaDocumentRecord) Validate(index int) error {
	if r.DocumentName == "" {
		return NewInvalidRow(index, "document_name", "must not be empty")
	}
	if r.ChangesCount < 0 {
		return NewInvalidRow(index, "changes_count", "must not be negative")
	}
	if r.ImplementedCount < 0 {
		return NewInvalidRow(index, "implemented_count", "must not be negative")
	}
	if r.ImplementedCount > r.ChangesCount {
		return NewInvalidRow(index, "implemented_count", "exceeds changes_count")
	}
	if rate := r.ImplementationRate; rate != nil && (*rate < 0 || *rate > 100) {
		return NewInvalidRow(index, "implementation_rate", "must be within 0..100")
	}
	return nil
}

// NpaDocument - документ с итоговым процентом внедрения
type NpaDocument struct {
	DocumentName       string  `json:"document_name"`
	ChangesCount       int     `json:"changes_count"`
	ImplementedCount   int     `json:"implemented_count"`
	ImplementationRate float64 `json:"implementation_rate"`
}

// NpaSummary - агрегаты по всем документам
type NpaSummary struct {
	TotalDocuments            int     `json:"total_documents"`
	TotalChanges              int     `json:"total_changes"`
	TotalImplemented          int     `json:"total_implemented"`
	NotImplemented            int     `json:"not_implemented"`
	AverageImplementationRate float64 `json:"average_implementation_rate"`
}

// NpaReport - отчет по НПА
type NpaReport struct {
	Documents []NpaDocument `json:"documents"`
	Summary   NpaSummary    `json:"summary"`
}
