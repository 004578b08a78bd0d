package models

type User struct {
	ID          uint     `gorm:"primaryKey;autoIncrement"     json:"id"`
	Name        string   `gorm:"size:32;not null"             json:"name"`
	Phone       string   `gorm:"size:15;uniqueIndex;not null" json:"phone"`
	Password    string   `gorm:"size:255;not null"            json:"-"`
	IsSuperuser bool     `gorm:"default:false"                json:"is_superuser"`
	Address     *Address `json:"address,omitempty"`
	Orders      []Order  `json:"-"`
}

type Address struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Street    *string `gorm:"size:255"                 json:"street"`
	Reference *string `gorm:"size:255"                 json:"reference"`
	UserID    *uint   `gorm:"uniqueIndex"              json:"user_id"`
}

type Item struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"size:64;not null"         json:"name"`
	Description string     `gorm:"size:255;not null"        json:"description"`
	Price       float64    `gorm:"not null"                 json:"price"`
	ImagePath   string     `gorm:"size:255"                 json:"image_path"`
	IsAvailable bool       `gorm:"default:true"             json:"is_available"`
	Categories  []Category `gorm:"many2many:item_category"  json:"categories"`
}

type Category struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"size:32;not null"         json:"name"`
	Items []Item `gorm:"many2many:item_category"  json:"-"`
}

// At most one open (is_placed=false) order exists per user, enforced by the
// partial unique index on user_id.
type Order struct {
	ID       uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint        `gorm:"not null;index:idx_orders_open_user,unique,where:is_placed = false" json:"user_id"`
	IsPlaced bool        `gorm:"default:false" json:"is_placed"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

type OrderItem struct {
	OrderID  uint `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	ItemID   uint `gorm:"primaryKey;autoIncrement:false" json:"item_id"`
	Quantity int  `gorm:"default:1;check:quantity>0"     json:"quantity"`
	Item     Item `json:"item"`
}
