package vertigo

// Storage persists computed frequency reports. Only derived statistic rows are
// stored, never the offset index itself.
type Storage interface {
	SaveReport(corpus string, rows []ReportRow) error // 既存の同名レポートに追記せず置き換える
	GetReport(corpus string) ([]ReportRow, error)
	DeleteReport(corpus string) error
}
