package question

const maxPageLinks = 5

// Pagination is the set of page links shown under a question list.
type Pagination struct {
	Pages []int `json:"pages"`
	// ShowLast adds an ellipsis followed by a link to the last page.
	ShowLast bool `json:"show_last"`
	Last     int  `json:"last"`
}

// PageWindow picks at most five page links around current. Past page three
// the window slides so current stays near its end, and a jump to the last
// page is offered while it is more than two pages away.
func PageWindow(current, total int) Pagination {
	if total <= 1 {
		return Pagination{}
	}

	p := Pagination{Last: total}
	for i := range min(total, maxPageLinks) {
		page := i + 1
		if current > 3 && total > maxPageLinks {
			page = current - 3 + i
		}
		if page > total {
			continue
		}
		p.Pages = append(p.Pages, page)
	}

	p.ShowLast = total > maxPageLinks && current < total-2
	return p
}
