package vertigo

import "sort"

// ReportRow is one ranked frequency-list entry: a count key with its raw
// frequency, instances per million and Average Reduced Frequency.
type ReportRow struct {
	Key  string  `db:"count_key"`
	Freq int     `db:"freq"`
	IPM  float64 `db:"ipm"`
	ARF  float64 `db:"arf"`
}

func NewReportRow(key string, freq int, ipm, arf float64) ReportRow {
	return ReportRow{
		Key:  key,
		Freq: freq,
		IPM:  ipm,
		ARF:  arf,
	}
}

// Report computes a frequency list from a search index: one row per count key,
// sorted by ARF descending, ties broken by key.
func Report(index Index, n int) ([]ReportRow, error) {
	var rows reportRows = make([]ReportRow, 0, len(index))
	for key, occurrences := range index {
		ipm, err := IPM(occurrences, n)
		if err != nil {
			return nil, err
		}
		arf, err := ARF(occurrences, n)
		if err != nil {
			return nil, err
		}
		rows = append(rows, NewReportRow(key, len(occurrences), ipm, arf))
	}
	sort.Sort(rows)
	return rows, nil
}

// StoreFrequencies runs the search, builds the frequency report and saves it
// under the given corpus name, replacing any previous report for that name.
func StoreFrequencies(v *Vertical, storage Storage, corpus string, match MatchFunc, count CountFunc, options ...StreamOption) ([]ReportRow, error) {
	index, n, err := v.Search(match, count, options...)
	if err != nil {
		return nil, err
	}
	rows, err := Report(index, n)
	if err != nil {
		return nil, err
	}
	if err := storage.SaveReport(corpus, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

type reportRows []ReportRow

func (rs reportRows) Len() int { return len(rs) }
func (rs reportRows) Less(i, j int) bool {
	if rs[i].ARF != rs[j].ARF {
		return rs[i].ARF > rs[j].ARF
	}
	return rs[i].Key < rs[j].Key
}
func (rs reportRows) Swap(i, j int) { rs[i], rs[j] = rs[j], rs[i] }
