package repository

import "technomaster/internal/model"

// seedProducts is written to the product table the first time it is read and found missing
func seedProducts() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Title:       "Windows O'rnatish",
			Description: "Barcha drayverlar va ofis dasturlari bilan sifatli Windows o'rnatish xizmati.",
			Price:       150000,
			ImageURL:    "https://images.unsplash.com/photo-1593640408182-31c70c8268f5?auto=format&fit=crop&q=80&w=400",
			Category:    model.CategorySoftware,
		},
		{
			ID:          "2",
			Title:       "Kompyuter Tozalash",
			Description: "Changlardan tozalash va termopastani yangilash. Kompyuter ishlashini tezlashtirish.",
			Price:       100000,
			ImageURL:    "https://images.unsplash.com/photo-1588508065123-287b28e013da?auto=format&fit=crop&q=80&w=400",
			Category:    model.CategoryRepair,
		},
		{
			ID:          "3",
			Title:       "SSD O'rnatish",
			Description: "Eski HDD o'rniga tezkor SSD o'rnatish va ma'lumotlarni ko'chirish.",
			Price:       350000,
			ImageURL:    "https://images.unsplash.com/photo-1597872258084-dd313c6b9996?auto=format&fit=crop&q=80&w=400",
			Category:    model.CategoryHardware,
		},
	}
}

var newsPosts = []model.NewsPost{
	{
		ID:       "1",
		Title:    "NVIDIA yangi RTX 5000 seriyasini e'lon qildi",
		Excerpt:  "Grafik kartalar olamida yangi inqilob. Sun'iy intellekt endi o'yinlarda yanada tezroq ishlaydi.",
		Date:     "12 Mart, 2024",
		ImageURL: "https://images.unsplash.com/photo-1591488320449-011701bb6704?auto=format&fit=crop&q=80&w=400",
	},
	{
		ID:       "2",
		Title:    "Windows 12 qachon chiqadi?",
		Excerpt:  "Microsoft yangi operatsion tizim ustida ishlamoqda. Yangi dizayn va bulutli texnologiyalar.",
		Date:     "10 Mart, 2024",
		ImageURL: "https://images.unsplash.com/photo-1629654297299-c8506221ca97?auto=format&fit=crop&q=80&w=400",
	},
	{
		ID:       "3",
		Title:    "SSD disklar narxi oshishi mumkin",
		Excerpt:  "Jahon bozorida xotira chiplari taqchilligi kuzatilmoqda. Kompyuteringizni hoziroq yangilang.",
		Date:     "05 Mart, 2024",
		ImageURL: "https://images.unsplash.com/photo-1558486012-817147316dd7?auto=format&fit=crop&q=80&w=400",
	},
}
