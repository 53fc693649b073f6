package seed

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
)

// productCatalog devuelve el catálogo fijo de 8 productos en 4 categorías.
// Es determinista: actúa como dominio de claves foráneas para los demás
// generadores, así que no se aleatoriza.
func productCatalog() []entity.Product {
	d := decimal.NewFromInt
	return []entity.Product{
		{ID: 1, Name: "Product A", Category: entity.CategoryElectronics, Cost: d(120), Price: d(200)},
		{ID: 2, Name: "Product B", Category: entity.CategoryElectronics, Cost: d(80), Price: d(150)},
		{ID: 3, Name: "Product C", Category: entity.CategoryClothing, Cost: d(30), Price: d(60)},
		{ID: 4, Name: "Product D", Category: entity.CategoryClothing, Cost: d(25), Price: d(45)},
		{ID: 5, Name: "Product E", Category: entity.CategoryHome, Cost: d(50), Price: d(90)},
		{ID: 6, Name: "Product F", Category: entity.CategoryHome, Cost: d(70), Price: d(120)},
		{ID: 7, Name: "Product G", Category: entity.CategoryFood, Cost: d(10), Price: d(18)},
		{ID: 8, Name: "Product H", Category: entity.CategoryFood, Cost: d(5), Price: d(10)},
	}
}

// Categorías de gasto y sus rangos mensuales [min,max] en unidades enteras.
var expenseCategories = []string{
	"Rent", "Utilities", "Salaries", "Marketing",
	"Supplies", "Maintenance", "Insurance", "Miscellaneous",
}

func expenseRange(category string) (min, max int) {
	switch category {
	case "Rent":
		return 4000, 5000
	case "Utilities":
		return 1000, 1500
	case "Salaries":
		return 15000, 20000
	case "Marketing":
		return 2000, 3000
	default:
		return 500, 2000
	}
}

// Pools de nombres, roles y departamentos para la plantilla de empleados.
var (
	firstNames = []string{
		"John", "Emma", "Michael", "Sophia", "William", "Olivia", "James",
		"Ava", "Benjamin", "Isabella", "Ethan", "Mia", "Alexander",
		"Charlotte", "Daniel", "Amelia", "Matthew", "Harper", "David", "Evelyn",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Jones", "Brown", "Davis", "Miller",
		"Wilson", "Moore", "Taylor", "Anderson", "Thomas", "Jackson", "White",
		"Harris", "Martin", "Thompson", "Garcia", "Martinez", "Robinson",
	}
	roles = []string{
		"Sales Associate", "Sales Manager", "Marketing Specialist",
		"Customer Support", "Inventory Specialist", "Office Manager",
		"HR Specialist", "Account Manager", "Warehouse Manager",
		"Administrative Assistant",
	}
	departments = []string{
		"Sales", "Marketing", "Customer Service", "Warehouse", "Administration",
	}

	// Pools reducidos que usa la regeneración de desempeño cuando no hay
	// archivo de empleados previo.
	reducedFirstNames = firstNames[:10]
	reducedLastNames  = lastNames[:10]
	reducedRoles      = roles[:6]
)
