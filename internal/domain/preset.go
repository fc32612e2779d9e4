package domain

// PresetItem is a quick-entry product preset shown by the input form.
type PresetItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    Amount   `json:"price"`
	Category Category `json:"type"`
}

// DefaultPresets returns the factory preset catalog used when nothing has
// been saved yet or after a reset to defaults. IDs are assigned by the
// caller.
func DefaultPresets() []PresetItem {
	return []PresetItem{
		{Name: "Print Hitam Putih", Price: NewAmount(500), Category: CategoryPrint},
		{Name: "Print Warna", Price: NewAmount(1000), Category: CategoryPrint},
		{Name: "Fotocopy", Price: NewAmount(250), Category: CategoryPrint},
		{Name: "Cetak Foto 4R", Price: NewAmount(3000), Category: CategoryPrint},
		{Name: "Jilid Spiral", Price: NewAmount(5000), Category: CategoryGoods},
		{Name: "Laminating", Price: NewAmount(3000), Category: CategoryGoods},
		{Name: "Kertas HVS A4 (rim)", Price: NewAmount(45000), Category: CategoryGoods},
		{Name: "Jasa Ketik per Lembar", Price: NewAmount(2000), Category: CategoryService},
		{Name: "Install Aplikasi", Price: NewAmount(20000), Category: CategoryService},
		{Name: "Desain Banner", Price: NewAmount(50000), Category: CategoryService},
	}
}
