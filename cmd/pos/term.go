package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/grocodev/groco/config"
	"github.com/grocodev/groco/internal/admin"
	"github.com/grocodev/groco/internal/cart"
	"github.com/grocodev/groco/internal/catalog"
	"github.com/grocodev/groco/internal/catalog/dto"
	"github.com/grocodev/groco/internal/export"
	"github.com/grocodev/groco/internal/model"
	"github.com/grocodev/groco/internal/register"
	"github.com/grocodev/groco/internal/report"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// session is the interactive front-end: it only parses input, calls the
// core and prints results. All business rules live below it.
type session struct {
	in     *bufio.Scanner
	out    io.Writer
	cfg    *config.Config
	logger *zap.Logger

	catalog  catalog.UseCase
	stock    register.Stock
	register *register.Register
	admins   *admin.Directory

	current *model.Administrator
	basket  *cart.Cart
}

func newSession(in io.Reader, out io.Writer, cfg *config.Config, logger *zap.Logger,
	cat catalog.UseCase, stock register.Stock, reg *register.Register, admins *admin.Directory) *session {
	return &session{
		in:       bufio.NewScanner(in),
		out:      out,
		cfg:      cfg,
		logger:   logger,
		catalog:  cat,
		stock:    stock,
		register: reg,
		admins:   admins,
		basket:   cart.New(),
	}
}

func (s *session) run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Groco POS — type 'help' for commands")
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			return s.in.Err()
		}
		args := strings.Fields(s.in.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return nil
		}
		s.dispatch(ctx, args)
	}
}

func (s *session) dispatch(ctx context.Context, args []string) {
	switch args[0] {
	case "help":
		s.printHelp()
	case "login":
		s.login(args[1:])
	case "logout":
		s.logout()
	case "signup":
		s.signup(args[1:])
	case "list":
		s.printArticles(s.catalog.List(ctx))
	case "search":
		s.search(ctx, args[1:])
	case "add":
		s.addToCart(ctx, args[1:])
	case "rm":
		if len(args) == 2 {
			s.basket.RemoveLine(args[1])
		}
	case "qty":
		s.setQuantity(args[1:])
	case "cart":
		s.printCart()
	case "checkout":
		s.checkout(ctx)
	case "cancel":
		s.basket.Clear()
		fmt.Fprintln(s.out, "cart cleared")
	case "article":
		s.article(ctx, args[1:])
	case "report":
		s.report(ctx, args[1:])
	case "export":
		s.export(ctx, args[1:])
	default:
		fmt.Fprintf(s.out, "unknown command %q — try 'help'\n", args[0])
	}
}

func (s *session) printHelp() {
	fmt.Fprint(s.out, `commands:
  login <id> <password>        connect as administrator
  signup <name> <email> <pw>   create an administrator account
  logout
  list                         show the catalog
  search name|category <text>  search articles
  add <article-id> <qty>       add to the cart
  rm <article-id>              remove a cart line
  qty <article-id> <n>         change a line quantity (0 removes)
  cart                         show the cart
  checkout                     finalize the sale and print the receipt
  cancel                       clear the cart
  article add|edit|del ...     catalog mutation (admin only)
  report sales|inventory|expired|lowstock|top
  export sales|inventory|expired|lowstock <path.csv>
  quit
`)
}

func (s *session) login(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "usage: login <id> <password>")
		return
	}
	a, err := s.admins.Authenticate(args[0], args[1])
	if err != nil {
		fmt.Fprintln(s.out, "error:", err)
		return
	}
	s.current = a
	fmt.Fprintf(s.out, "welcome, %s\n", a.Name)
}

func (s *session) logout() {
	if s.current != nil {
		s.current.Disconnect()
		s.current = nil
	}
	fmt.Fprintln(s.out, "logged out")
}

func (s *session) signup(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(s.out, "usage: signup <name> <email> <password>")
		return
	}
	a, err := s.admins.Register(args[0], args[1], args[2])
	if err != nil {
		fmt.Fprintln(s.out, "error:", err)
		return
	}
	fmt.Fprintf(s.out, "account created, your admin id is %s\n", a.ID)
}

func (s *session) search(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "usage: search name|category <text>")
		return
	}
	term := strings.Join(args[1:], " ")
	switch args[0] {
	case "name":
		s.printArticles(s.catalog.SearchByName(ctx, term))
	case "category":
		s.printArticles(s.catalog.SearchByCategory(ctx, term))
	default:
		fmt.Fprintln(s.out, "usage: search name|category <text>")
	}
}

func (s *session) printArticles(articles []model.Article) {
	if len(articles) == 0 {
		fmt.Fprintln(s.out, "no articles")
		return
	}
	now := time.Now()
	for _, a := range articles {
		expiry := "-"
		switch a.Kind {
		case model.KindPerishable:
			expiry = a.Expiry.Format("2006-01-02")
			if a.ExpiredAt(now) {
				expiry += " (expired)"
			}
		case model.KindNonPerishable:
			expiry = fmt.Sprintf("shelf life %dd", a.ShelfLifeDays)
		}
		fmt.Fprintf(s.out, "%-5s %-26s %-18s %8s€  stock %3d  %s\n",
			a.ID, a.Name, a.Category, a.Price.StringFixed(2), a.Stock, expiry)
	}
}

func (s *session) addToCart(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "usage: add <article-id> <qty>")
		return
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(s.out, "error: invalid quantity")
		return
	}
	a, err := s.catalog.Get(ctx, args[0])
	if err != nil {
		fmt.Fprintln(s.out, "error:", err)
		return
	}
	// Advisory only; the register re-validates at checkout.
	if !s.catalog.Available(ctx, a.ID, qty) {
		fmt.Fprintf(s.out, "warning: only %d in stock\n", a.Stock)
	}
	if err := s.basket.AddLine(a, qty); err != nil {
		fmt.Fprintln(s.out, "error:", err)
		return
	}
	fmt.Fprintf(s.out, "%d x %s in cart\n", qty, a.Name)
}

func (s *session) setQuantity(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "usage: qty <article-id> <n>")
		return
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(s.out, "error: invalid quantity")
		return
	}
	s.basket.SetQuantity(args[0], n)
}

func (s *session) printCart() {
	if s.basket.IsEmpty() {
		fmt.Fprintln(s.out, "cart is empty")
		return
	}
	for _, l := range s.basket.Lines() {
		fmt.Fprintf(s.out, "%-5s %-26s x%-3d %8s€\n",
			l.ArticleID, l.Name, l.Quantity, l.Total().StringFixed(2))
	}
	subtotal := s.basket.Total()
	tax := subtotal.Mul(s.cfg.Register.TaxRate)
	fmt.Fprintf(s.out, "subtotal %s€   tax %s€   total %s€\n",
		subtotal.StringFixed(2), tax.StringFixed(2), subtotal.Add(tax).StringFixed(2))
}

func (s *session) checkout(ctx context.Context) {
	sale, err := s.register.Finalize(ctx, s.basket, s.stock)
	if err != nil {
		fmt.Fprintln(s.out, "error:", err)
		return
	}
	s.basket.Clear()
	fmt.Fprintln(s.out, export.Receipt(sale, s.cfg.Register.TaxRate))
}

func (s *session) article(ctx context.Context, args []string) {
	if s.current == nil {
		fmt.Fprintln(s.out, "error: login required")
		return
	}
	if len(args) == 0 {
		fmt.Fprintln(s.out, "usage: article add|edit|del ...")
		return
	}
	switch args[0] {
	case "add":
		s.articleAdd(ctx, args[1:])
	case "edit":
		s.articleEdit(ctx, args[1:])
	case "del":
		if len(args) != 2 {
			fmt.Fprintln(s.out, "usage: article del <id>")
			return
		}
		if err := s.catalog.Remove(ctx, s.current, args[1]); err != nil {
			fmt.Fprintln(s.out, "error:", err)
			return
		}
		fmt.Fprintln(s.out, "article removed")
	default:
		fmt.Fprintln(s.out, "usage: article add|edit|del ...")
	}
}

// article add <id> <name> <category> <price> <stock> perishable <yyyy-mm-dd>
// article add <id> <name> <category> <price> <stock> shelf <days>
func (s *session) articleAdd(ctx context.Context, args []string) {
	if len(args) != 7 {
		fmt.Fprintln(s.out, "usage: article add <id> <name> <category> <price> <stock> perishable|shelf <date|days>")
		return
	}
	price, err := decimal.NewFromString(args[3])
	if err != nil {
		fmt.Fprintln(s.out, "error: invalid price")
		return
	}
	stock, err := strconv.Atoi(args[4])
	if err != nil {
		fmt.Fprintln(s.out, "error: invalid stock")
		return
	}
	in := dto.CreateArticleInput{
		ID:       args[0],
		Name:     args[1],
		Category: args[2],
		Price:    price,
		Stock:    stock,
	}
	switch args[5] {
	case "perishable":
		expiry, err := time.ParseInLocation("2006-01-02", args[6], time.Local)
		if err != nil {
			fmt.Fprintln(s.out, "error: invalid expiry date")
			return
		}
		in.Perishable = true
		in.Expiry = expiry
	case "shelf":
		days, err := strconv.Atoi(args[6])
		if err != nil {
			fmt.Fprintln(s.out, "error: invalid shelf life")
			return
		}
		in.ShelfLifeDays = days
	default:
		fmt.Fprintln(s.out, "error: kind must be perishable or shelf")
		return
	}
	if _, err := s.catalog.Create(ctx, s.current, in); err != nil {
		fmt.Fprintln(s.out, "error:", err)
		return
	}
	fmt.Fprintln(s.out, "article added")
}

// article edit <id> field=value ... — empty/omitted fields keep their value.
func (s *session) articleEdit(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "usage: article edit <id> name=.. category=.. price=.. stock=..")
		return
	}
	var in dto.UpdateArticleInput
	for _, kv := range args[1:] {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || v == "" {
			continue
		}
		switch k {
		case "name":
			in.Name = &v
		case "category":
			in.Category = &v
		case "price":
			p, err := decimal.NewFromString(v)
			if err != nil {
				fmt.Fprintln(s.out, "error: invalid price")
				return
			}
			in.Price = &p
		case "stock":
			n, err := strconv.Atoi(v)
			if err != nil {
				fmt.Fprintln(s.out, "error: invalid stock")
				return
			}
			in.Stock = &n
		}
	}
	if _, err := s.catalog.Update(ctx, s.current, args[0], in); err != nil {
		fmt.Fprintln(s.out, "error:", err)
		return
	}
	fmt.Fprintln(s.out, "article updated")
}

func (s *session) report(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "usage: report sales|inventory|expired|lowstock|top")
		return
	}
	switch args[0] {
	case "sales":
		sales := s.register.DailySales(time.Now())
		sum := report.Summarize(sales)
		fmt.Fprintf(s.out, "today: %d sale(s), revenue %s€, average %s€, %d line(s) sold\n",
			sum.Transactions, sum.Revenue.StringFixed(2), sum.Average.StringFixed(2), sum.ItemsSold)
	case "inventory":
		rows, stats := report.Inventory(s.catalog.List(ctx))
		s.printStockRows(rows)
		fmt.Fprintf(s.out, "%d article(s), value %s€, %d low stock, %d out of stock\n",
			stats.TotalItems, stats.TotalValue.StringFixed(2), stats.LowStock, stats.OutOfStock)
	case "expired":
		rows, stats := report.Expired(s.catalog.List(ctx), time.Now())
		s.printStockRows(rows)
		fmt.Fprintf(s.out, "%d expired, %d expiring within %d days, expired value %s€\n",
			stats.Expired, stats.ExpiringSoon, report.ExpiryWarningDays, stats.ExpiredValue.StringFixed(2))
	case "lowstock":
		rows, stats := report.LowStock(s.catalog.List(ctx))
		s.printStockRows(rows)
		fmt.Fprintf(s.out, "%d low stock, %d out of stock, value at risk %s€\n",
			stats.LowStock, stats.OutOfStock, stats.ValueAtRisk.StringFixed(2))
	case "top":
		for i, p := range report.TopProducts(s.register.Journal(), 10) {
			fmt.Fprintf(s.out, "%2d. %-26s x%-4d %8s€\n",
				i+1, p.Name, p.QuantitySold, p.Revenue.StringFixed(2))
		}
	default:
		fmt.Fprintln(s.out, "usage: report sales|inventory|expired|lowstock|top")
	}
}

func (s *session) printStockRows(rows []report.StockRow) {
	for _, r := range rows {
		fmt.Fprintf(s.out, "%-5s %-40s %4d %8s€ %10s€\n",
			r.ArticleID, r.Name, r.Quantity, r.Price.StringFixed(2), r.TotalValue.StringFixed(2))
	}
}

func (s *session) export(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "usage: export sales|inventory|expired|lowstock <path.csv>")
		return
	}

	f, err := os.Create(args[1])
	if err != nil {
		fmt.Fprintln(s.out, "error:", err)
		return
	}
	defer f.Close()

	switch args[0] {
	case "sales":
		err = export.WriteSalesCSV(f, s.register.Journal())
	case "inventory":
		rows, _ := report.Inventory(s.catalog.List(ctx))
		err = export.WriteStockCSV(f, rows)
	case "expired":
		rows, _ := report.Expired(s.catalog.List(ctx), time.Now())
		err = export.WriteStockCSV(f, rows)
	case "lowstock":
		rows, _ := report.LowStock(s.catalog.List(ctx))
		err = export.WriteStockCSV(f, rows)
	default:
		fmt.Fprintln(s.out, "usage: export sales|inventory|expired|lowstock <path.csv>")
		return
	}
	if err != nil {
		fmt.Fprintln(s.out, "error:", err)
		return
	}
	s.logger.Info("report exported", zap.String("kind", args[0]), zap.String("path", args[1]))
	fmt.Fprintf(s.out, "exported to %s\n", args[1])
}
