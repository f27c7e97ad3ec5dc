package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tripnest/travel-client/internal/core/aggregate"
	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

// dateFlag parses YYYY-MM-DD into a domain.Date.
type dateFlag struct{ d domain.Date }

func (f *dateFlag) String() string { return f.d.String() }

func (f *dateFlag) Set(s string) error {
	d, err := domain.ParseDate(s)
	if err != nil {
		return err
	}
	f.d = d
	return nil
}

// decimalFlag parses an amount; unset stays invalid.
type decimalFlag struct{ v decimal.NullDecimal }

func (f *decimalFlag) String() string {
	if !f.v.Valid {
		return ""
	}
	return f.v.Decimal.String()
}

func (f *decimalFlag) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	f.v = decimal.NewNullDecimal(d)
	return nil
}

func optionalID(s string) *domain.ID {
	return domain.ID(strings.TrimSpace(s)).Ref()
}

func (a *App) register(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var in ports.RegisterInput
	fs.StringVar(&in.Username, "username", "", "username")
	fs.StringVar(&in.Email, "email", "", "email address")
	fs.StringVar(&in.Phone, "phone", "", "phone number")
	fs.StringVar(&in.Password, "password", "", "password (at least 6 characters)")
	fs.StringVar(&in.ConfirmPassword, "confirm", "", "password confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.Session.Register(ctx, in)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) login(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var c ports.Credentials
	fs.StringVar(&c.Username, "username", "", "username")
	fs.StringVar(&c.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := a.Session.Login(ctx, c)
	if err != nil {
		return err
	}
	return a.print(id)
}

func (a *App) logout(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	a.Session.Logout(ctx)
	return nil
}

func (a *App) whoami(_ context.Context, fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := a.identity()
	if err != nil {
		return err
	}
	return a.print(id)
}

func (a *App) profile(ctx context.Context, fs *flag.FlagSet, args []string) error {
	id, err := a.identity()
	if err != nil {
		return err
	}
	in := ports.ProfileInput{Email: id.Email, Phone: id.Phone}
	fs.StringVar(&in.Email, "email", in.Email, "new email address")
	fs.StringVar(&in.Phone, "phone", in.Phone, "new phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	updated, err := a.Session.UpdateProfile(ctx, in)
	if err != nil {
		return err
	}
	return a.print(updated)
}

func (a *App) packages(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var q aggregate.CatalogQuery
	fs.StringVar(&q.Search, "search", "", "title or description contains")
	fs.StringVar(&q.Category, "category", "", "exact category")
	fs.StringVar(&q.Sort, "sort", "", "title_asc, title_desc, price_asc or price_desc")
	fs.IntVar(&q.Page, "page", 1, "page number")
	fs.IntVar(&q.PerPage, "per-page", aggregate.DefaultPerPage, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	page, err := a.Views.Catalog(ctx, q)
	if err != nil {
		return err
	}
	return a.print(page)
}

func (a *App) pkg(ctx context.Context, fs *flag.FlagSet, args []string) error {
	id := fs.String("id", "", "package id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("%w: -id is required", ErrUsage)
	}

	p, err := a.Views.Package(ctx, domain.ID(*id))
	if err != nil {
		return err
	}
	return a.print(p)
}

func (a *App) dashboard(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var ref dateFlag
	fs.Var(&ref, "date", "reference date for upcoming bookings (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := a.identity()
	if err != nil {
		return err
	}

	view, err := a.Views.Dashboard(ctx, id, ref.d)
	if err != nil {
		return err
	}
	return a.print(view)
}

func (a *App) history(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := a.identity()
	if err != nil {
		return err
	}

	view, err := a.Views.History(ctx, id)
	if err != nil {
		return err
	}
	return a.print(view)
}

func (a *App) book(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var (
		date dateFlag
		in   ports.BookPackageInput
	)
	pkg := fs.String("package", "", "package id")
	fs.Var(&date, "date", "travel date (defaults to the package start date)")
	fs.IntVar(&in.Travelers, "travelers", 1, "number of travelers")
	fs.StringVar(&in.SpecialRequests, "requests", "", "special requests")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := a.identity()
	if err != nil {
		return err
	}
	in.UserID = id.ID
	in.PackageID = domain.ID(*pkg)
	in.Date = date.d

	b, err := a.Bookings.BookPackage(ctx, in)
	if err != nil {
		return err
	}
	return a.print(b)
}

func (a *App) cancel(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var in ports.CancelInput
	booking := fs.String("booking", "", "booking id")
	fs.StringVar(&in.Reason, "reason", "", "cancellation reason")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := a.identity()
	if err != nil {
		return err
	}
	in.BookingID = domain.ID(*booking)

	b, err := a.Bookings.CancelByID(ctx, id, in)
	if err != nil {
		return err
	}
	return a.print(b)
}

func (a *App) trip(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var (
		in     ports.CreateTripInput
		date   dateFlag
		budget decimalFlag
	)
	transport := fs.String("transport", "", "bus, train or plane")
	stops := fs.String("stops", "", "comma-separated intermediate stops")
	fs.StringVar(&in.Name, "name", "", "trip name")
	fs.StringVar(&in.Departure, "from", "", "departure")
	fs.StringVar(&in.Destination, "to", "", "destination")
	fs.Var(&date, "date", "travel date (YYYY-MM-DD)")
	fs.Var(&budget, "budget", "budget")
	fs.StringVar(&in.Notes, "notes", "", "notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := a.identity()
	if err != nil {
		return err
	}
	in.UserID = id.ID
	in.Transport = domain.Transport(*transport)
	in.Date = date.d
	in.Budget = budget.v
	for _, s := range strings.Split(*stops, ",") {
		if s = strings.TrimSpace(s); s != "" {
			in.IntermediateStops = append(in.IntermediateStops, s)
		}
	}

	t, err := a.Trips.CreateCustom(ctx, in)
	if err != nil {
		return err
	}
	return a.print(t)
}

func (a *App) tripFromPackage(ctx context.Context, fs *flag.FlagSet, args []string) error {
	pkgID := fs.String("package", "", "package id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := a.identity()
	if err != nil {
		return err
	}
	if *pkgID == "" {
		return fmt.Errorf("%w: -package is required", ErrUsage)
	}

	p, err := a.Views.Package(ctx, domain.ID(*pkgID))
	if err != nil {
		return err
	}
	t, err := a.Trips.PromoteFromPackage(ctx, id.ID, *p)
	if err != nil {
		return err
	}
	return a.print(t)
}

func (a *App) search(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var (
		in   ports.SearchInput
		date dateFlag
	)
	fs.StringVar(&in.Departure, "from", "", "departure")
	fs.StringVar(&in.Destination, "to", "", "destination")
	fs.Var(&date, "date", "travel date (YYYY-MM-DD)")
	fs.IntVar(&in.Passengers, "passengers", 1, "passengers")
	bookN := fs.Int("book", 0, "book the Nth option (1-based)")
	trackN := fs.Int("track", 0, "record the Nth option (1-based) as a transport expense")
	tripID := fs.String("trip", "", "attach the booking or expense to this trip")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in.Date = date.d

	options, err := a.Trips.Search(ctx, in)
	if err != nil {
		return err
	}
	if *bookN == 0 && *trackN == 0 {
		return a.print(options)
	}

	id, err := a.identity()
	if err != nil {
		return err
	}
	pick := func(n int) (domain.TransportOption, error) {
		if n < 1 || n > len(options) {
			return domain.TransportOption{}, fmt.Errorf("%w: option %d out of range 1..%d", ErrUsage, n, len(options))
		}
		return options[n-1], nil
	}

	if *bookN > 0 {
		opt, err := pick(*bookN)
		if err != nil {
			return err
		}
		travelers := in.Passengers
		if travelers < 1 {
			travelers = 1
		}
		b, err := a.Trips.BookOption(ctx, ports.BookOptionInput{
			UserID:    id.ID,
			TripID:    optionalID(*tripID),
			Option:    opt,
			Date:      in.Date,
			Travelers: travelers,
		})
		if err != nil {
			return err
		}
		return a.print(b)
	}

	opt, err := pick(*trackN)
	if err != nil {
		return err
	}
	e, err := a.Trips.TrackOption(ctx, ports.TrackOptionInput{
		UserID: id.ID,
		TripID: optionalID(*tripID),
		Option: opt,
		Date:   in.Date,
	})
	if err != nil {
		return err
	}
	return a.print(e)
}

func (a *App) expenseAdd(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var (
		in     ports.ExpenseInput
		date   dateFlag
		amount decimalFlag
	)
	tripID := fs.String("trip", "", "trip id (omit for a general expense)")
	fs.Var(&date, "date", "expense date (defaults to today)")
	fs.StringVar(&in.Category, "category", "", "category")
	fs.Var(&amount, "amount", "amount")
	fs.StringVar(&in.Description, "description", "", "description")
	fs.StringVar(&in.ReceiptURL, "receipt", "", "receipt URL")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := a.identity()
	if err != nil {
		return err
	}
	in.UserID = id.ID
	in.TripID = optionalID(*tripID)
	in.Date = date.d
	in.Amount = amount.v

	e, err := a.Expenses.Create(ctx, in)
	if err != nil {
		return err
	}
	return a.print(e)
}

func (a *App) expenses(ctx context.Context, fs *flag.FlagSet, args []string) error {
	tripID := fs.String("trip", "", "only expenses of this trip")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := a.identity()
	if err != nil {
		return err
	}

	items, err := a.Expenses.List(ctx, id.ID, optionalID(*tripID))
	if err != nil {
		return err
	}
	return a.print(struct {
		Items []domain.Expense `json:"items"`
		Total string           `json:"total"`
	}{items, aggregate.ExpenseTotal(items).StringFixed(2)})
}

func (a *App) expenseDelete(ctx context.Context, fs *flag.FlagSet, args []string) error {
	expenseID := fs.String("id", "", "expense id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := a.identity()
	if err != nil {
		return err
	}
	return a.Expenses.Delete(ctx, id, domain.ID(*expenseID))
}

func (a *App) adminOverview(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := a.identity()
	if err != nil {
		return err
	}

	view, err := a.Admin.Overview(ctx, id)
	if err != nil {
		return err
	}
	return a.print(view)
}

func (a *App) adminStatus(ctx context.Context, fs *flag.FlagSet, args []string) error {
	booking := fs.String("booking", "", "booking id")
	status := fs.String("status", "", "pending, confirmed, cancelled or completed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := a.identity()
	if err != nil {
		return err
	}

	b, err := a.Admin.SetBookingStatus(ctx, id, domain.ID(*booking), domain.BookingStatus(*status))
	if err != nil {
		return err
	}
	return a.print(b)
}
