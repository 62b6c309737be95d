package dto

// FilterQuery binds the filter controls every analysis endpoint accepts.
// countries and sectors are repeatable query parameters holding explicit
// selections; omitting them selects nothing. The year bounds default to a
// range wider than any dataset, which means "no year restriction".
type FilterQuery struct {
	Countries []string `form:"countries"`
	Sectors   []string `form:"sectors"`
	YearFrom  int      `form:"year_from,default=0"`
	YearTo    int      `form:"year_to,default=9999"`
}
