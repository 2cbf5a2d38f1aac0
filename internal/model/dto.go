package model

import (
	"net/url"

	"github.com/suar-net/bestsellers-gw/internal/validation"
)

// Inbound query parameter names.
const (
	ParamList            = "list"
	ParamBestsellersDate = "bestsellers_date"
	ParamPublishedDate   = "published_date"
	ParamOffset          = "offset"
	ParamAgeGroup        = "age_group"
	ParamAuthor          = "author"
	ParamContributor     = "contributor"
	ParamISBN            = "isbn"
	ParamPrice           = "price"
	ParamPublisher       = "publisher"
	ParamTitle           = "title"
)

// outboundNames holds the inbound names the upstream API spells differently.
var outboundNames = map[string]string{
	ParamBestsellersDate: "bestsellers-date",
	ParamPublishedDate:   "published-date",
	ParamAgeGroup:        "age-group",
}

// OutboundName translates an inbound parameter name to the upstream spelling.
func OutboundName(inbound string) string {
	if name, ok := outboundNames[inbound]; ok {
		return name
	}
	return inbound
}

// ReviewSearchFields are the /reviews parameters of which at least one is required.
var ReviewSearchFields = []string{ParamISBN, ParamTitle, ParamAuthor}

// ListParams selects a single best-seller list. The date fields are nil when
// the caller did not send them; a sent but empty date is still validated.
type ListParams struct {
	List            string
	BestsellersDate *string
	PublishedDate   *string
	Offset          string
}

// NewListParams reads the /lists query parameters from q.
func NewListParams(q url.Values) ListParams {
	return ListParams{
		List:            q.Get(ParamList),
		BestsellersDate: optional(q, ParamBestsellersDate),
		PublishedDate:   optional(q, ParamPublishedDate),
		Offset:          q.Get(ParamOffset),
	}
}

func (p ListParams) params() validation.Params {
	ps := validation.Params{
		ParamList:   p.List,
		ParamOffset: p.Offset,
	}
	setOptional(ps, ParamBestsellersDate, p.BestsellersDate)
	setOptional(ps, ParamPublishedDate, p.PublishedDate)
	return ps
}

// Validate fails on a missing list name first, then on malformed dates.
func (p ListParams) Validate() error {
	ps := p.params()
	if _, err := validation.RequireParam(ps, ParamList); err != nil {
		return err
	}
	for _, name := range []string{ParamBestsellersDate, ParamPublishedDate} {
		if err := validation.ValidateDateParam(ps, name); err != nil {
			return err
		}
	}
	return nil
}

// Query returns the outbound parameters for /lists.json.
func (p ListParams) Query() url.Values {
	return outbound(p.params(), ParamList, ParamBestsellersDate, ParamPublishedDate, ParamOffset)
}

// OverviewParams selects the overview of all lists for a publication date.
// Without a date the upstream returns the current week.
type OverviewParams struct {
	PublishedDate *string
}

// NewOverviewParams reads the /overview query parameters from q.
func NewOverviewParams(q url.Values) OverviewParams {
	return OverviewParams{PublishedDate: optional(q, ParamPublishedDate)}
}

func (p OverviewParams) params() validation.Params {
	ps := validation.Params{}
	setOptional(ps, ParamPublishedDate, p.PublishedDate)
	return ps
}

// Validate rejects a malformed or empty published_date.
func (p OverviewParams) Validate() error {
	return validation.ValidateDateParam(p.params(), ParamPublishedDate)
}

// Query returns the outbound parameters for /lists/overview.json.
func (p OverviewParams) Query() url.Values {
	return outbound(p.params(), ParamPublishedDate)
}

// HistoryParams filters the best-seller history search. All fields are
// forwarded as given.
type HistoryParams struct {
	AgeGroup    string
	Author      string
	Contributor string
	ISBN        string
	Offset      string
	Price       string
	Publisher   string
	Title       string
}

// NewHistoryParams reads the /history query parameters from q.
func NewHistoryParams(q url.Values) HistoryParams {
	return HistoryParams{
		AgeGroup:    q.Get(ParamAgeGroup),
		Author:      q.Get(ParamAuthor),
		Contributor: q.Get(ParamContributor),
		ISBN:        q.Get(ParamISBN),
		Offset:      q.Get(ParamOffset),
		Price:       q.Get(ParamPrice),
		Publisher:   q.Get(ParamPublisher),
		Title:       q.Get(ParamTitle),
	}
}

func (p HistoryParams) params() validation.Params {
	return validation.Params{
		ParamAgeGroup:    p.AgeGroup,
		ParamAuthor:      p.Author,
		ParamContributor: p.Contributor,
		ParamISBN:        p.ISBN,
		ParamOffset:      p.Offset,
		ParamPrice:       p.Price,
		ParamPublisher:   p.Publisher,
		ParamTitle:       p.Title,
	}
}

// Validate always succeeds; history filters are not checked.
func (p HistoryParams) Validate() error {
	return nil
}

// Query returns the outbound parameters for /lists/best-sellers/history.json.
func (p HistoryParams) Query() url.Values {
	return outbound(p.params(),
		ParamAgeGroup, ParamAuthor, ParamContributor, ParamISBN,
		ParamOffset, ParamPrice, ParamPublisher, ParamTitle,
	)
}

// ReviewParams searches book reviews by ISBN, title or author.
type ReviewParams struct {
	ISBN   string
	Title  string
	Author string
}

// NewReviewParams reads the /reviews query parameters from q.
func NewReviewParams(q url.Values) ReviewParams {
	return ReviewParams{
		ISBN:   q.Get(ParamISBN),
		Title:  q.Get(ParamTitle),
		Author: q.Get(ParamAuthor),
	}
}

func (p ReviewParams) params() validation.Params {
	return validation.Params{
		ParamISBN:   p.ISBN,
		ParamTitle:  p.Title,
		ParamAuthor: p.Author,
	}
}

// Validate requires at least one of isbn, title or author.
func (p ReviewParams) Validate() error {
	_, err := validation.RequireAtLeastOne(p.params(), ReviewSearchFields...)
	return err
}

// Query returns the outbound parameters for /reviews.json.
func (p ReviewParams) Query() url.Values {
	return outbound(p.params(), ReviewSearchFields...)
}

// optional returns nil when name is not in q at all, and a pointer to its
// value (possibly empty) otherwise.
func optional(q url.Values, name string) *string {
	if !q.Has(name) {
		return nil
	}
	v := q.Get(name)
	return &v
}

func setOptional(ps validation.Params, name string, v *string) {
	if v != nil {
		ps[name] = *v
	}
}

// outbound copies the non-empty params named in keys, renamed to their
// upstream spelling.
func outbound(ps validation.Params, keys ...string) url.Values {
	q := make(url.Values)
	for _, key := range keys {
		if v := ps[key]; v != "" {
			q.Set(OutboundName(key), v)
		}
	}
	return q
}
