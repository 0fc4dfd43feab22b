// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import "github.com/taibuivan/migrationboard/internal/catalog"

func ml(en, nl, de string) catalog.MultiLang {
	return catalog.MultiLang{EN: en, NL: nl, DE: de}
}

func product(articleNumber, price, nameEN string) catalog.Product {
	return catalog.Product{
		ArticleNumber: articleNumber,
		Price:         price,
		Name:          ml(nameEN, nameEN+" (nl)", nameEN+" (de)"),
		Description:   ml("English text", "Nederlandse tekst", "Deutscher Text"),
	}
}

// sampleTree has a duplicate article (2755) across categories, an empty
// subcategory and a legacy flat category.
func sampleTree() []catalog.CleanCategory {
	return []catalog.CleanCategory{
		{
			Name: ml("Antique Clocks & Watches", "Antieke klokken", "Antike Uhren"),
			Subcategories: []catalog.CleanSubcategory{
				{
					Name:        ml("Wall Clocks", "Wandklokken", "Wanduhren"),
					Description: ml("Clocks for the wall", "", ""),
					Products: []catalog.Product{
						product("2755", "€ 1.250", "Globe Wernicke clock"),
						product("2756", "Bel ons voor prijs", "Friesian clock"),
					},
				},
				{
					Name: ml("Pocket Watches", "Zakhorloges", "Taschenuhren"),
				},
			},
		},
		{
			Name: ml("Furniture", "Meubels", "Möbel"),
			Subcategories: []catalog.CleanSubcategory{
				{
					Name: ml("Cabinets", "Kasten", "Schränke"),
					Products: []catalog.Product{
						product("2755", "€ 999", "Globe Wernicke bookcase"),
						product("3001", "€", "Oak cabinet"),
					},
				},
			},
		},
		{
			Name: ml("Lamps", "Lampen", "Lampen"),
			Products: []catalog.Product{
				product("4100", "€0", "Brass lamp"),
			},
		},
	}
}
