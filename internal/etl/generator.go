// Package etl gera o dataset sintético usado para popular o banco local
package etl

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/vfg2006/cafe-analytics-api/internal/domain"
	"github.com/vfg2006/cafe-analytics-api/pkg/utils"
)

// menuCatalog agrupa os nomes de itens por categoria
var menuCatalog = map[string][]string{
	"Coffee":        {"Espresso", "Americano", "Cappuccino", "Latte", "Mocha", "Flat White"},
	"Tea":           {"Black Tea", "Green Tea", "Herbal Tea", "Oolong Tea", "Chamomile"},
	"Pastry":        {"Croissant", "Blueberry Muffin", "Chocolate Donut", "Baklava", "Cherry Tart"},
	"Sandwich":      {"Club Sandwich", "Panini", "BLT", "Turkey Wrap", "Grilled Cheese"},
	"Smoothie":      {"Strawberry Banana Smoothie", "Green Detox Smoothie", "Mango Lassi"},
	"Juice":         {"Orange Juice", "Apple Juice", "Carrot Ginger Juice", "Beetroot Juice"},
	"Salad":         {"Caesar Salad", "Greek Salad", "Quinoa Salad", "Caprese Salad"},
	"Soup":          {"Tomato Basil Soup", "Chicken Noodle Soup", "Mushroom Soup", "Lentil Soup"},
	"Breakfast":     {"Pancakes", "French Toast", "Omelette", "Avocado Toast"},
	"Snack":         {"Fruit Bowl", "Yogurt Parfait", "Granola Bar", "Nachos"},
	"Alcohol":       {"Red Wine", "White Wine", "Local Beer", "Mojito", "Whiskey Sour"},
	"Non-Alcoholic": {"Sparkling Water", "Lemonade", "Iced Tea", "Soft Drink"},
	"Specialty":     {"Affogato", "Turkish Coffee", "Matcha Latte", "Chai Latte"},
}

// priceRanges define as faixas de preço base por categoria
var priceRanges = map[string][2]float64{
	"Coffee":        {2.5, 5.0},
	"Tea":           {1.5, 4.0},
	"Pastry":        {1.0, 3.5},
	"Sandwich":      {4.0, 8.0},
	"Smoothie":      {3.5, 6.5},
	"Juice":         {2.5, 5.0},
	"Salad":         {3.5, 7.0},
	"Soup":          {3.0, 6.0},
	"Breakfast":     {5.0, 10.0},
	"Snack":         {1.0, 4.0},
	"Alcohol":       {4.0, 12.0},
	"Non-Alcoholic": {1.0, 3.0},
	"Specialty":     {3.0, 7.0},
}

// Dataset agrega todas as tabelas geradas para o seed
type Dataset struct {
	Users            []domain.User
	MenuItems        []domain.MenuItem
	Daytimes         []domain.MenuDaytime
	Transactions     []domain.Transaction
	TransactionItems []domain.TransactionItem
}

// Generator produz dados sintéticos determinísticos a partir de uma seed
type Generator struct {
	rng *rand.Rand
	now time.Time
}

func NewGenerator(seed int64, now time.Time) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// Generate monta o dataset completo: clientes, cardápio, faixas de horário,
// vendas dentro da janela de lookback e seus itens.
func (g *Generator) Generate(users, menuItems, transactions, lookbackDays int) Dataset {
	mobilePool := g.generateUsers(users)
	items := g.generateMenuItems(menuItems)
	daytimes := DefaultDaytimes()
	txs := g.generateTransactions(transactions, lookbackDays, mobilePool)
	txItems := g.generateTransactionItems(txs, items)

	return Dataset{
		Users:            mobilePool,
		MenuItems:        items,
		Daytimes:         daytimes,
		Transactions:     txs,
		TransactionItems: txItems,
	}
}

// DefaultDaytimes retorna as faixas de horário padrão do cardápio. As faixas
// não cobrem a madrugada de propósito: vendas fora delas ficam sem faixa.
func DefaultDaytimes() []domain.MenuDaytime {
	return []domain.MenuDaytime{
		{DaytimeID: 1, Label: "Breakfast", StartTime: "06:00:00", EndTime: "10:59:59"},
		{DaytimeID: 2, Label: "Lunch", StartTime: "11:00:00", EndTime: "14:59:59"},
		{DaytimeID: 3, Label: "Afternoon", StartTime: "15:00:00", EndTime: "17:59:59"},
		{DaytimeID: 4, Label: "Dinner", StartTime: "18:00:00", EndTime: "22:59:59"},
		{DaytimeID: 5, Label: "Late Night", StartTime: "23:00:00", EndTime: "23:59:59"},
	}
}

func (g *Generator) generateUsers(n int) []domain.User {
	users := make([]domain.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, domain.User{
			MobileID: uuid.NewString(),
			Notes:    "",
		})
	}
	return users
}

func (g *Generator) generateMenuItems(n int) []domain.MenuItem {
	// A ordem de iteração de mapas é aleatória; ordenar mantém a geração
	// determinística para a mesma seed
	categories := make([]string, 0, len(menuCatalog))
	for category := range menuCatalog {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	items := make([]domain.MenuItem, 0, n)
	for i := 1; i <= n; i++ {
		category := categories[g.rng.Intn(len(categories))]
		names := menuCatalog[category]
		bounds := priceRanges[category]

		items = append(items, domain.MenuItem{
			ItemID:   i,
			ItemName: names[g.rng.Intn(len(names))],
			Price:    utils.RoundWithTwoDecimalPlace(bounds[0] + g.rng.Float64()*(bounds[1]-bounds[0])),
			Category: category,
		})
	}
	return items
}

func (g *Generator) generateTransactions(n, lookbackDays int, users []domain.User) []domain.Transaction {
	if lookbackDays <= 0 {
		lookbackDays = 90
	}

	windowSeconds := int64(lookbackDays) * 24 * 3600
	start := g.now.Add(-time.Duration(windowSeconds) * time.Second)

	txs := make([]domain.Transaction, 0, n)
	for i := 1; i <= n; i++ {
		createdAt := start.Add(time.Duration(g.rng.Int63n(windowSeconds)) * time.Second)

		txs = append(txs, domain.Transaction{
			TransactionID: i,
			MobileID:      users[g.rng.Intn(len(users))].MobileID,
			TotalAmount:   utils.RoundWithTwoDecimalPlace(5.0 + g.rng.Float64()*195.0),
			CreatedAt:     createdAt,
		})
	}
	return txs
}

// generateTransactionItems sorteia de 1 a 3 itens distintos por venda
func (g *Generator) generateTransactionItems(txs []domain.Transaction, items []domain.MenuItem) []domain.TransactionItem {
	txItems := make([]domain.TransactionItem, 0, len(txs)*2)
	for _, tx := range txs {
		count := 1 + g.rng.Intn(3)

		chosen := g.rng.Perm(len(items))[:count]
		for _, idx := range chosen {
			item := items[idx]
			txItems = append(txItems, domain.TransactionItem{
				TransactionID: tx.TransactionID,
				ItemID:        item.ItemID,
				Quantity:      1 + g.rng.Intn(4),
				Price:         item.Price,
			})
		}
	}
	return txItems
}
