package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"technomaster/internal/config"
	"technomaster/internal/kv"
	"technomaster/internal/llm"
	"technomaster/internal/model"
	"technomaster/internal/repository"
	"technomaster/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli holds state shared by every subcommand
type cli struct {
	driver     string
	sqlitePath string
	logLevel   string

	store  kv.Store
	logger *zap.Logger
}

func (c *cli) open(ctx context.Context) error {
	if c.logger == nil {
		logger, err := config.NewLogger(c.logLevel)
		if err != nil {
			return err
		}
		c.logger = logger
	}
	if c.store != nil {
		return nil
	}
	store, err := config.OpenStore(ctx, &config.Config{StoreDriver: c.driver, SQLitePath: c.sqlitePath}, c.logger)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", c.driver, err)
	}
	c.store = store
	return nil
}

func (c *cli) products() service.ProductService {
	return service.NewProductService(repository.NewProductRepository(c.store), repository.NewNewsRepository(), llm.StaticDescriber{}, c.logger)
}

func (c *cli) orders() service.OrderService {
	return service.NewOrderService(repository.NewOrderRepository(c.store), repository.NewProductRepository(c.store),
		repository.NewSessionRepository(c.store), c.logger)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "technomasterctl",
		Short:         "Manage the TechnoMaster catalog, orders and users",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.open(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.driver, "driver", envOr("STORE_DRIVER", config.DriverSQLite), "Store driver: memory, sqlite or postgres")
	pf.StringVar(&c.sqlitePath, "sqlite-path", envOr("SQLITE_PATH", "./technomaster.db"), "SQLite database file")
	pf.StringVar(&c.logLevel, "log-level", envOr("LOG_LEVEL", "warn"), "Log level")

	root.AddCommand(newProductsCmd(c), newOrdersCmd(c), newUsersCmd(c))
	return root
}

func newProductsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{Use: "products", Short: "Manage catalog products"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List products, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := c.products().ListProducts(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tCATEGORY")
			for _, p := range products {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Title, strconv.FormatFloat(p.Price, 'f', -1, 64), p.Category)
			}
			return tw.Flush()
		},
	})

	var req model.CreateProductRequest
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.products().AddProduct(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added product %s\n", p.ID)
			return nil
		},
	}
	f := addCmd.Flags()
	f.StringVar(&req.Title, "title", "", "Product title")
	f.StringVar(&req.Description, "description", "", "Product description")
	f.Float64Var(&req.Price, "price", 0, "Price in so'm")
	f.StringVar(&req.ImageURL, "image", "", "Image URL (random placeholder when empty)")
	f.StringVar(&req.Category, "category", "", "Category: repair, software, hardware or consulting")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("category")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.products().DeleteProduct(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted product %s\n", args[0])
			return nil
		},
	})
	return cmd
}

func newOrdersCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{Use: "orders", Short: "Inspect and update orders"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List orders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := c.orders().ListOrders(cmd.Context())
			if err != nil {
				return err
			}
			return printOrders(cmd.OutOrStdout(), orders)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-status <id> <pending|completed|cancelled>",
		Short: "Set an order's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := c.orders().UpdateOrderStatus(cmd.Context(), args[0], model.OrderStatus(args[1]))
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "order %s not found, nothing changed\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order %s is now %s\n", args[0], args[1])
			return nil
		},
	})
	return cmd
}

func printOrders(w io.Writer, orders []model.Order) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCT\tCUSTOMER\tPHONE\tSTATUS\tDATE")
	pending := 0
	for _, o := range orders {
		if o.Status == model.OrderStatusPending {
			pending++
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", o.ID, o.ProductTitle, o.CustomerName, o.CustomerPhone,
			o.Status, o.Date.Format("2006-01-02 15:04"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d orders, %d pending\n", len(orders), pending)
	return err
}

func newUsersCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "Inspect registered customers"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := repository.NewUserRepository(c.store).List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPHONE\tEMAIL")
			for _, u := range users {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Phone, u.Email)
			}
			return tw.Flush()
		},
	})
	return cmd
}

func main() {
	_ = godotenv.Load()

	c := &cli{}
	err := newRootCmd(c).ExecuteContext(context.Background())
	if c.store != nil {
		_ = c.store.Close()
	}
	if c.logger != nil {
		_ = c.logger.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
