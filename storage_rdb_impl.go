package vertigo

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(
		"mysql",
		fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbConfig.User, dbConfig.Password, dbConfig.Addr, dbConfig.Port, dbConfig.DB),
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

type DBConfig struct {
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

func (s *StorageRdbImpl) SaveReport(corpus string, rows []ReportRow) error {
	if err := s.DeleteReport(corpus); err != nil {
		return err
	}
	for _, row := range rows {
		_, err := s.DB.NamedExec(
			`insert into frequency_reports (corpus, count_key, freq, ipm, arf)
			values (:corpus, :count_key, :freq, :ipm, :arf)`,
			map[string]interface{}{
				"corpus":    corpus,
				"count_key": row.Key,
				"freq":      row.Freq,
				"ipm":       row.IPM,
				"arf":       row.ARF,
			})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *StorageRdbImpl) GetReport(corpus string) ([]ReportRow, error) {
	rows := []ReportRow{}
	err := s.DB.Select(&rows,
		`select count_key, freq, ipm, arf from frequency_reports where corpus = ? order by arf desc, count_key asc`,
		corpus)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *StorageRdbImpl) DeleteReport(corpus string) error {
	_, err := s.DB.Exec(`delete from frequency_reports where corpus = ?`, corpus)
	return err
}
