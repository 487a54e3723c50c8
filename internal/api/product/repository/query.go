package productRepository

const (
	queryCreateProduct = `
INSERT INTO products (id, name, description, category, image, images, price, stock, discount, occasion_id, created_at)
VALUES (:id, :name, :description, :category, :image, :images, :price, :stock, :discount, :occasion_id, :created_at)`

	queryGetProductByID = `
SELECT id, name, description, category, image, images, price, stock, discount, rating, num_reviews, occasion_id, created_at, updated_at
FROM products
    WHERE id = :id`

	querySelectProducts = `
SELECT id, name, description, category, image, images, price, stock, discount, rating, num_reviews, occasion_id, created_at, updated_at
FROM products`

	queryCountProducts = `
SELECT COUNT(*) FROM products`

	queryUpdateProduct = `
		UPDATE products
SET name = :name, description = :description, category = :category,
    image = :image, images = :images, price = :price, stock = :stock,
    discount = :discount, occasion_id = :occasion_id, updated_at = :updated_at
WHERE id = :id`

	queryDeleteProduct = `
DELETE FROM products WHERE id = :id`

	queryInventoryStats = `
SELECT
    COUNT(*) AS total_products,
    COUNT(*) FILTER (WHERE stock > 0 AND stock <= 5) AS low_stock,
    COUNT(*) FILTER (WHERE stock = 0) AS out_of_stock
FROM products`

	queryRecalculateRating = `
		UPDATE products
SET rating = COALESCE((SELECT ROUND(AVG(rating)::numeric, 1) FROM reviews WHERE product_id = :product_id), 0),
    num_reviews = (SELECT COUNT(*) FROM reviews WHERE product_id = :product_id),
    updated_at = :updated_at
WHERE id = :product_id`

	queryCreateReview = `
INSERT INTO reviews (id, product_id, user_id, user_name, rating, comment, created_at)
VALUES (:id, :product_id, :user_id, :user_name, :rating, :comment, :created_at)`

	queryGetReviewByID = `
SELECT id, product_id, user_id, user_name, rating, comment, created_at
FROM reviews
    WHERE id = :id`

	queryListReviewsByProduct = `
SELECT id, product_id, user_id, user_name, rating, comment, created_at
FROM reviews
    WHERE product_id = :product_id
ORDER BY created_at DESC`

	queryDeleteReview = `
DELETE FROM reviews WHERE id = :id`
)
