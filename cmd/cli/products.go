package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// productView is a product with its price after discount.
type productView struct {
	ProductID int             `json:"productId" yaml:"productId"`
	Name      string          `json:"name" yaml:"name"`
	SKU       string          `json:"sku" yaml:"sku"`
	Price     decimal.Decimal `json:"price" yaml:"price"`
	Discount  string          `json:"discount" yaml:"discount"`
	SalePrice decimal.Decimal `json:"salePrice" yaml:"salePrice"`
}

func newProductsCmd(a *app) *cobra.Command {
	var discounted bool
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products with their sale price",
		Long: `Products lists the catalogue the way the storefront shows it: the
sale price applies the product discount, when there is one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.format()
			if err != nil {
				return err
			}
			products, err := a.client().Products().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list products: %w", err)
			}
			views := make([]productView, 0, len(products))
			for _, p := range products {
				if discounted && !p.HasDiscount() {
					continue
				}
				v := productView{
					ProductID: p.ProductID,
					Name:      p.Name,
					SKU:       p.SKU,
					Price:     decimal.NewFromFloat(p.Price),
					SalePrice: p.SalePrice(),
				}
				if p.HasDiscount() {
					v.Discount = decimal.NewFromFloat(*p.Discount).Shift(2).String() + "%"
				}
				views = append(views, v)
			}
			return render(cmd.OutOrStdout(), format, views)
		},
	}
	cmd.Flags().BoolVar(&discounted, "discounted", false, "only show products on sale")
	return cmd
}
