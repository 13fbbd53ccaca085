package handler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ffpos/ffpos/internal/core/domain"
	"github.com/ffpos/ffpos/internal/core/report"
	"github.com/ffpos/ffpos/internal/core/service"
)

// CLI is the terminal front-end: it translates operator input into
// service calls and service errors into user-visible notices.
type CLI struct {
	pos      *service.POSService
	settings *service.SettingsService
	auth     *service.AuthService
	in       *bufio.Scanner
	out      io.Writer
}

func NewCLI(pos *service.POSService, settings *service.SettingsService, auth *service.AuthService, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		pos:      pos,
		settings: settings,
		auth:     auth,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run reads commands until exit or EOF.
func (c *CLI) Run() error {
	fmt.Fprintln(c.out, "FastFood POS - type 'help' for commands")
	for {
		fmt.Fprint(c.out, "pos> ")
		if !c.in.Scan() {
			return c.in.Err()
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}
		args := strings.Fields(line)
		if args[0] == "exit" || args[0] == "quit" {
			return nil
		}
		c.dispatch(args[0], args[1:])
	}
}

func (c *CLI) dispatch(cmd string, args []string) {
	switch cmd {
	case "help":
		c.printHelp()
	case "login":
		c.login(args)
	case "logout":
		c.auth.Logout()
		fmt.Fprintln(c.out, "logged out")
	default:
		user, ok := c.auth.CurrentUser()
		if !ok {
			fmt.Fprintln(c.out, "please login first (login <username> <password>)")
			return
		}
		c.dispatchAuthed(user, cmd, args)
	}
}

func (c *CLI) dispatchAuthed(user domain.User, cmd string, args []string) {
	switch cmd {
	case "menu":
		c.printMenu()
	case "add":
		c.addToCart(args)
	case "remove":
		if len(args) == 1 {
			c.pos.RemoveFromCart(args[0])
		}
	case "qty":
		c.updateQuantity(args)
	case "cart":
		c.printCart()
	case "clear":
		c.pos.ClearCart()
	case "checkout":
		c.checkout(args)
	case "orders":
		c.printOrders()
	case "advance":
		c.advance(args)
	case "receipt":
		c.printReceipt()
	case "reports":
		c.printReports()
	case "settings":
		c.printSettings()
	case "set", "additem", "edititem", "delitem":
		if user.Role != domain.RoleAdmin {
			fmt.Fprintln(c.out, "admin only")
			return
		}
		c.dispatchAdmin(cmd, args)
	default:
		fmt.Fprintf(c.out, "unknown command %q\n", cmd)
	}
}

func (c *CLI) dispatchAdmin(cmd string, args []string) {
	switch cmd {
	case "set":
		c.updateSettings(args)
	case "additem":
		c.addMenuItem(args)
	case "edititem":
		c.editMenuItem(args)
	case "delitem":
		if len(args) == 1 {
			c.pos.DeleteMenuItem(args[0])
			fmt.Fprintln(c.out, "item deleted")
		}
	}
}

func (c *CLI) printHelp() {
	fmt.Fprint(c.out, `commands:
  login <user> <pass> | logout
  menu | add <id> | remove <id> | qty <id> <n> | cart | clear
  checkout [dine-in|takeaway|delivery] [cash <tendered>|card [ref]|mobile [ref]]
  orders | advance <order-id> | receipt | reports | settings
  admin: set <tax|discount|currency|lowstock|store-name> <value>
         additem <name> <price> <category> <stock> | edititem <id> <field> <value> | delitem <id>
  exit
`)
}

func (c *CLI) login(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "usage: login <username> <password>")
		return
	}
	if !c.auth.Login(args[0], args[1]) {
		fmt.Fprintln(c.out, "invalid credentials")
		return
	}
	fmt.Fprintf(c.out, "welcome, %s\n", args[0])
}

func (c *CLI) printMenu() {
	cfg := c.settings.Current()
	for _, item := range c.pos.MenuItems() {
		low := ""
		if item.Stock <= cfg.LowStockThreshold {
			low = "  LOW STOCK"
		}
		fmt.Fprintf(c.out, "%-10s %-20s %-10s %-10s stock:%d%s\n",
			item.ID, item.Name, cfg.Currency.Format(item.Price), item.Category, item.Stock, low)
	}
}

func (c *CLI) addToCart(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: add <item-id>")
		return
	}
	err := c.pos.AddToCart(args[0])
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		fmt.Fprintln(c.out, "no such menu item")
	case errors.Is(err, domain.ErrOutOfStock):
		fmt.Fprintln(c.out, "out of stock")
	case errors.Is(err, domain.ErrStockLimitReached):
		fmt.Fprintln(c.out, "stock limit reached")
	case err != nil:
		fmt.Fprintf(c.out, "error: %v\n", err)
	}
}

func (c *CLI) updateQuantity(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "usage: qty <item-id> <quantity>")
		return
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(c.out, "quantity must be a number")
		return
	}
	c.pos.UpdateCartQuantity(args[0], n)
}

func (c *CLI) printCart() {
	cfg := c.settings.Current()
	lines := c.pos.Cart()
	if len(lines) == 0 {
		fmt.Fprintln(c.out, "cart is empty")
		return
	}
	for _, l := range lines {
		fmt.Fprintf(c.out, "%-20s x%-3d %s\n", l.Item.Name, l.Quantity, cfg.Currency.Format(l.LineTotal()))
	}
	fmt.Fprintf(c.out, "subtotal: %s\n", cfg.Currency.Format(domain.Subtotal(lines)))
}

// checkout mirrors the payment dialog: the default discount comes from the
// settings discount percent, tax from the settings rate, and cash tender
// is validated against the resulting total.
func (c *CLI) checkout(args []string) {
	cfg := c.settings.Current()
	lines := c.pos.Cart()

	opts := domain.OrderOptions{Type: domain.OrderTypeTakeaway}
	if len(args) > 0 {
		switch domain.OrderType(args[0]) {
		case domain.OrderTypeDineIn, domain.OrderTypeTakeaway, domain.OrderTypeDelivery:
			opts.Type = domain.OrderType(args[0])
			args = args[1:]
		}
	}

	subtotal := domain.Subtotal(lines)
	discount := subtotal.Mul(cfg.DiscountPercent).Div(decimal.NewFromInt(100))
	opts.Costs.Discount = &discount
	preview := domain.ComputeCosts(lines, opts.Costs, cfg.TaxRatePercent)

	if len(args) > 0 {
		payment, err := c.buildPayment(args, preview.Total)
		if err != nil {
			return
		}
		opts.Payment = payment
	}

	order, err := c.pos.CreateOrder(opts)
	if errors.Is(err, domain.ErrEmptyCart) {
		fmt.Fprintln(c.out, "please add items to cart first")
		return
	}
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "order #%s created\n", order.ID)
	fmt.Fprintln(c.out, RenderReceipt(cfg, order))
}

func (c *CLI) buildPayment(args []string, total decimal.Decimal) (*domain.PaymentInfo, error) {
	var ref string
	if len(args) > 1 {
		ref = strings.Join(args[1:], " ")
	}
	switch args[0] {
	case "cash":
		if len(args) < 2 {
			fmt.Fprintln(c.out, "usage: checkout ... cash <tendered>")
			return nil, errors.New("missing tender")
		}
		tendered, err := decimal.NewFromString(args[1])
		if err != nil {
			fmt.Fprintln(c.out, "tendered must be an amount")
			return nil, err
		}
		p, err := domain.NewCashPayment(tendered, total)
		if errors.Is(err, domain.ErrInsufficientTender) {
			fmt.Fprintln(c.out, "tendered amount is below the total")
			return nil, err
		}
		return &p, err
	case "card":
		p := domain.NewCardPayment(ref)
		return &p, nil
	case "mobile":
		p := domain.NewMobilePayment(ref)
		return &p, nil
	default:
		fmt.Fprintf(c.out, "unknown payment method %q\n", args[0])
		return nil, domain.ErrInvalidPayment
	}
}

func (c *CLI) printOrders() {
	cfg := c.settings.Current()
	for _, o := range c.pos.Orders() {
		fmt.Fprintf(c.out, "#%-20s %s  %-9s %-9s %s\n",
			o.ID, o.Timestamp.Format("Jan 02 15:04:05"), o.Status, o.Type, cfg.Currency.Format(o.Costs.Total))
	}
}

func (c *CLI) advance(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: advance <order-id>")
		return
	}
	var next domain.OrderStatus
	for _, o := range c.pos.Orders() {
		if o.ID == args[0] {
			switch o.Status {
			case domain.StatusPending:
				next = domain.StatusPreparing
			case domain.StatusPreparing:
				next = domain.StatusCompleted
			}
		}
	}
	err := c.pos.UpdateOrderStatus(args[0], next)
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		fmt.Fprintln(c.out, "no such order")
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		fmt.Fprintln(c.out, "order is already completed")
	case err != nil:
		fmt.Fprintf(c.out, "error: %v\n", err)
	default:
		fmt.Fprintf(c.out, "order #%s marked as %s\n", args[0], next)
	}
}

func (c *CLI) printReceipt() {
	o := c.pos.CurrentReceipt()
	if o == nil {
		fmt.Fprintln(c.out, "no receipt to show")
		return
	}
	fmt.Fprintln(c.out, RenderReceipt(c.settings.Current(), *o))
}

func (c *CLI) printReports() {
	cfg := c.settings.Current()
	orders := c.pos.Orders()
	now := time.Now()

	stats := report.Summary(orders, now)
	fmt.Fprintf(c.out, "total revenue: %s  today: %s  orders: %d  avg: %s\n",
		cfg.Currency.Format(stats.TotalRevenue), cfg.Currency.Format(stats.TodayRevenue),
		stats.TotalOrders, cfg.Currency.Format(stats.AverageOrderValue))

	fmt.Fprintln(c.out, "daily sales (7 days):")
	for _, d := range report.DailySales(orders, 7, now) {
		fmt.Fprintf(c.out, "  %s  %s (%d orders)\n", d.Date.Format("Mon Jan 02"), cfg.Currency.Format(d.Revenue), d.Orders)
	}

	fmt.Fprintln(c.out, "by category:")
	for _, cs := range report.CategorySales(orders) {
		fmt.Fprintf(c.out, "  %-12s %s (%d sold)\n", cs.Category, cfg.Currency.Format(cs.Revenue), cs.Quantity)
	}

	fmt.Fprintln(c.out, "top sellers:")
	for _, ts := range report.TopSellers(orders, 5) {
		fmt.Fprintf(c.out, "  %-20s x%-4d %s\n", ts.Name, ts.Quantity, cfg.Currency.Format(ts.Revenue))
	}

	if low := report.LowStock(c.pos.MenuItems(), cfg.LowStockThreshold); len(low) > 0 {
		fmt.Fprintln(c.out, "low stock:")
		for _, item := range low {
			fmt.Fprintf(c.out, "  %-20s stock:%d\n", item.Name, item.Stock)
		}
	}
}

func (c *CLI) printSettings() {
	cfg := c.settings.Current()
	fmt.Fprintf(c.out, "store: %s, %s, %s\n", cfg.Store.Name, cfg.Store.AddressLine1, cfg.Store.Phone)
	fmt.Fprintf(c.out, "currency: %s  tax: %s%%  discount: %s%%  low-stock threshold: %d\n",
		cfg.Currency, cfg.TaxRatePercent, cfg.DiscountPercent, cfg.LowStockThreshold)
}

func (c *CLI) updateSettings(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.out, "usage: set <tax|discount|currency|lowstock|store-name> <value>")
		return
	}
	var patch domain.SettingsPatch
	switch args[0] {
	case "tax", "discount":
		pct, err := decimal.NewFromString(args[1])
		if err != nil {
			fmt.Fprintln(c.out, "value must be a percentage")
			return
		}
		if args[0] == "tax" {
			patch.TaxRatePercent = &pct
		} else {
			patch.DiscountPercent = &pct
		}
	case "currency":
		cur := domain.Currency(strings.ToUpper(args[1]))
		patch.Currency = &cur
	case "lowstock":
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintln(c.out, "value must be a number")
			return
		}
		patch.LowStockThreshold = &n
	case "store-name":
		name := strings.Join(args[1:], " ")
		patch.Store = &domain.StoreInfoPatch{Name: &name}
	default:
		fmt.Fprintf(c.out, "unknown setting %q\n", args[0])
		return
	}
	c.settings.Update(patch)
	fmt.Fprintln(c.out, "settings updated")
}

func (c *CLI) addMenuItem(args []string) {
	if len(args) != 4 {
		fmt.Fprintln(c.out, "usage: additem <name> <price> <category> <stock>")
		return
	}
	price, err := decimal.NewFromString(args[1])
	if err != nil || price.IsNegative() {
		fmt.Fprintln(c.out, "price must be a non-negative amount")
		return
	}
	stock, err := strconv.Atoi(args[3])
	if err != nil || stock < 0 {
		fmt.Fprintln(c.out, "stock must be a non-negative number")
		return
	}
	item := c.pos.AddMenuItem(domain.MenuItem{Name: args[0], Price: price, Category: args[2], Stock: stock})
	fmt.Fprintf(c.out, "added %s (%s)\n", item.Name, item.ID)
}

func (c *CLI) editMenuItem(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(c.out, "usage: edititem <id> <name|price|category|stock> <value>")
		return
	}
	var patch domain.MenuItemPatch
	value := strings.Join(args[2:], " ")
	switch args[1] {
	case "name":
		patch.Name = &value
	case "category":
		patch.Category = &value
	case "price":
		price, err := decimal.NewFromString(value)
		if err != nil {
			fmt.Fprintln(c.out, "price must be an amount")
			return
		}
		patch.Price = &price
	case "stock":
		n, err := strconv.Atoi(value)
		if err != nil {
			fmt.Fprintln(c.out, "stock must be a number")
			return
		}
		patch.Stock = &n
	default:
		fmt.Fprintf(c.out, "unknown field %q\n", args[1])
		return
	}
	if err := c.pos.UpdateMenuItem(args[0], patch); errors.Is(err, domain.ErrItemNotFound) {
		fmt.Fprintln(c.out, "no such menu item")
		return
	}
	fmt.Fprintln(c.out, "item updated")
}
