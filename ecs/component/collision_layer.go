package component

// Collision categories. An entity's main shape carries Category; a contact
// is only generated when each side's category is in the other's mask.
const (
	CategoryDefault      uint = 1 << 0
	CategoryPlayer       uint = 1 << 1
	CategorySensor       uint = 1 << 2
	CategoryProjectile   uint = 1 << 3
	CategoryCrossbowBolt uint = 1 << 4
	CategoryEnemy        uint = 1 << 5
	CategoryFire         uint = 1 << 6
	CategoryEnemyAttack  uint = 1 << 7
	CategoryRenderOnly   uint = 1 << 15

	CategoryAll uint = ^uint(0)
)

// CollisionLayer declares a collision category and mask for the entity's
// main shape. Zero Category means CategoryDefault; zero Mask means collide
// with everything.
type CollisionLayer struct {
	Category uint
	Mask     uint
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()

// Resolved returns the category and mask with zero values defaulted.
func (l CollisionLayer) Resolved() (category, mask uint) {
	category, mask = l.Category, l.Mask
	if category == 0 {
		category = CategoryDefault
	}
	if mask == 0 {
		mask = CategoryAll
	}
	return category, mask
}

// CategoryByName maps prefab category names to bits.
var CategoryByName = map[string]uint{
	"default":       CategoryDefault,
	"player":        CategoryPlayer,
	"sensor":        CategorySensor,
	"projectile":    CategoryProjectile,
	"crossbow_bolt": CategoryCrossbowBolt,
	"enemy":         CategoryEnemy,
	"fire":          CategoryFire,
	"enemy_attack":  CategoryEnemyAttack,
	"render_only":   CategoryRenderOnly,
	"all":           CategoryAll,
}
