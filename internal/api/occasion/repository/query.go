package occasionRepository

const (
	queryCreateOccasion = `
INSERT INTO occasions (id, name, description, image, created_at)
VALUES (:id, :name, :description, :image, :created_at)`

	queryGetOccasionByID = `
SELECT id, name, description, image, created_at, updated_at
FROM occasions
    WHERE id = :id`

	queryListOccasions = `
SELECT id, name, description, image, created_at, updated_at
FROM occasions
ORDER BY created_at ASC`

	queryDeleteOccasion = `
DELETE FROM occasions WHERE id = :id`

	queryListOccasionProducts = `
SELECT id, name, description, category, image, images, price, stock, discount, rating, num_reviews, occasion_id, created_at, updated_at
FROM products
    WHERE occasion_id = :occasion_id
ORDER BY created_at ASC`

	queryGetLinkedProduct = `
SELECT id, name, description, category, image, images, price, stock, discount, rating, num_reviews, occasion_id, created_at, updated_at
FROM products
    WHERE id = :product_id AND occasion_id = :occasion_id`
)
