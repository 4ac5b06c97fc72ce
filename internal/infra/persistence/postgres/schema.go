package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/forcollegesake07/food-bridge/internal/errors"
	"github.com/forcollegesake07/food-bridge/internal/infra/persistence/model"
)

// uuidV7Function provides the uuid_generate_v7() default used by the models.
const uuidV7Function = `
CREATE OR REPLACE FUNCTION uuid_generate_v7() RETURNS uuid AS $$
DECLARE
	ts bytea := substring(int8send((extract(epoch FROM clock_timestamp()) * 1000)::bigint) FROM 3);
	value bytea := ts || substring(uuid_send(gen_random_uuid()) FROM 7);
BEGIN
	value := set_byte(value, 6, (b'0111' || get_byte(value, 6)::bit(4))::bit(8)::int);
	value := set_byte(value, 8, (b'10' || get_byte(value, 8)::bit(6))::bit(8)::int);
	RETURN encode(value, 'hex')::uuid;
END
$$ LANGUAGE plpgsql VOLATILE;
`

// Migrate creates or updates the tables behind the repositories.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec(uuidV7Function).Error; err != nil {
		return errors.Wrap(err, "failed to create uuid_generate_v7")
	}

	if err := db.WithContext(ctx).AutoMigrate(
		&model.ProfileModel{},
		&model.DonationModel{},
		&model.RequestModel{},
		&model.BroadcastModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
