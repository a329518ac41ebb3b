package catalog

// Sample returns the storefront's demo catalog. Callers own the returned slice.
func Sample() []Entry {
	return []Entry{
		Reconstruct(1, "Men's Casual Shirt", "Comfortable cotton shirt perfect for casual wear", "fashion", Attrs{
			Price: 29.99, OriginalPrice: 39.99, Rating: 4.5, Reviews: 128,
			Image: "/images/products/shirt-1.jpg", HoverImage: "/images/products/shirt-2.jpg",
			Badge: "Sale", BadgeType: "pink", InStock: true, Discount: 25,
		}),
		Reconstruct(2, "Wireless Headphones", "High-quality wireless headphones with noise cancellation", "electronics", Attrs{
			Price: 89.99, OriginalPrice: 129.99, Rating: 4.8, Reviews: 256,
			Image: "/images/products/watch-1.jpg", HoverImage: "/images/products/watch-2.jpg",
			Badge: "New", BadgeType: "ocean-green", InStock: true, Discount: 31,
		}),
		Reconstruct(3, "Smart Watch", "Feature-rich smartwatch with health monitoring", "electronics", Attrs{
			Price: 199.99, OriginalPrice: 249.99, Rating: 4.6, Reviews: 89,
			Image: "/images/products/watch-3.jpg", HoverImage: "/images/products/watch-4.jpg",
			Badge: "Hot", BadgeType: "bittersweet", InStock: true, Discount: 20,
		}),
		Reconstruct(4, "Running Shoes", "Lightweight running shoes with superior comfort", "sports", Attrs{
			Price: 79.99, OriginalPrice: 99.99, Rating: 4.7, Reviews: 167,
			Image: "/images/products/shoe-1.jpg", HoverImage: "/images/products/shoe-2.jpg",
			Badge: "Sale", BadgeType: "pink", InStock: true, Discount: 20,
		}),
		Reconstruct(5, "Rose Gold Earrings", "Elegant rose gold earrings perfect for any occasion", "jewelry", Attrs{
			Price: 45.99, OriginalPrice: 59.99, Rating: 4.9, Reviews: 203,
			Image: "/images/products/jewellery-1.jpg", HoverImage: "/images/products/jewellery-2.jpg",
			Badge: "Popular", BadgeType: "ocean-green", InStock: true, Discount: 23,
		}),
		Reconstruct(6, "Designer Handbag", "Stylish designer handbag with premium leather", "fashion", Attrs{
			Price: 129.99, OriginalPrice: 179.99, Rating: 4.4, Reviews: 95,
			Image: "/images/products/clothes-1.jpg", HoverImage: "/images/products/clothes-2.jpg",
			Badge: "New", BadgeType: "ocean-green", InStock: true, Discount: 28,
		}),
		Reconstruct(7, "Gaming Mouse", "High-precision gaming mouse with RGB lighting", "electronics", Attrs{
			Price: 39.99, OriginalPrice: 59.99, Rating: 4.7, Reviews: 312,
			Image: "/images/products/1.jpg", HoverImage: "/images/products/2.jpg",
			Badge: "Hot", BadgeType: "bittersweet", InStock: true, Discount: 33,
		}),
		Reconstruct(8, "Yoga Mat", "Non-slip yoga mat perfect for all fitness levels", "sports", Attrs{
			Price: 24.99, OriginalPrice: 34.99, Rating: 4.6, Reviews: 178,
			Image: "/images/products/sports-1.jpg", HoverImage: "/images/products/sports-2.jpg",
			Badge: "Sale", BadgeType: "pink", InStock: true, Discount: 29,
		}),
	}
}
