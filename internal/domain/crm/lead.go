package crm

// LeadStatus represents the progression of a lead.
// The set is open: documents may carry statuses beyond these well-known ones.
type LeadStatus = string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusWon       LeadStatus = "won"
	LeadStatusLost      LeadStatus = "lost"
)

// Lead represents a prospective customer record.
// JSON field names mirror the persisted document layout exactly.
type Lead struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Company       string `json:"company"`
	Title         string `json:"title"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Source        string `json:"source"`
	Status        string `json:"status"`
	AddedDate     string `json:"addedDate"`
	LastContact   string `json:"lastContact"`
	Industry      string `json:"industry"`
	AnnualRevenue string `json:"annualRevenue"`
	Notes         string `json:"notes"`
}

// LeadPatch carries the fields of a partial lead update.
// Nil fields are left untouched; present fields overwrite.
type LeadPatch struct {
	Name          *string `json:"name"`
	Company       *string `json:"company"`
	Title         *string `json:"title"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Source        *string `json:"source"`
	Status        *string `json:"status"`
	AddedDate     *string `json:"addedDate"`
	LastContact   *string `json:"lastContact"`
	Industry      *string `json:"industry"`
	AnnualRevenue *string `json:"annualRevenue"`
	Notes         *string `json:"notes"`
}

// Apply merges the patch into the lead, shallow per field.
func (p LeadPatch) Apply(l *Lead) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Company != nil {
		l.Company = *p.Company
	}
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	if p.Phone != nil {
		l.Phone = *p.Phone
	}
	if p.Address != nil {
		l.Address = *p.Address
	}
	if p.Source != nil {
		l.Source = *p.Source
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.AddedDate != nil {
		l.AddedDate = *p.AddedDate
	}
	if p.LastContact != nil {
		l.LastContact = *p.LastContact
	}
	if p.Industry != nil {
		l.Industry = *p.Industry
	}
	if p.AnnualRevenue != nil {
		l.AnnualRevenue = *p.AnnualRevenue
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
}
