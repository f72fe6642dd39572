package member_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/changhyeonkim/member-registry/internal/member"
	"github.com/changhyeonkim/member-registry/internal/model"
	"github.com/changhyeonkim/member-registry/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// repositoryFactories builds every MemberRepository implementation so each
// registry behaviour is checked against both storages.
func repositoryFactories() map[string]func(t *testing.T) member.MemberRepository {
	return map[string]func(t *testing.T) member.MemberRepository{
		"memory": func(t *testing.T) member.MemberRepository {
			return member.NewMemoryRepository()
		},
		"gorm": func(t *testing.T) member.MemberRepository {
			db := testutil.SetupTestDB(t)
			t.Cleanup(func() {
				testutil.CleanupTestDB(t, db)
			})
			return member.NewGormRepository(db)
		},
	}
}

func forEachRepository(t *testing.T, fn func(t *testing.T, registry *member.MemberRegistry)) {
	t.Helper()

	for name, factory := range repositoryFactories() {
		t.Run(name, func(t *testing.T) {
			registry, err := member.NewMemberRegistry(context.Background(), factory(t), true)
			require.NoError(t, err)
			fn(t, registry)
		})
	}
}

func requireFailure(t *testing.T, err error, kind error, message string) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	got, ok := member.FailureMessage(err)
	require.True(t, ok)
	assert.Equal(t, message, got)
}

func TestNewMemberRegistry_Seed(t *testing.T) {
	forEachRepository(t, func(t *testing.T, registry *member.MemberRegistry) {
		ctx := context.Background()

		// When
		members, err := registry.ListActive(ctx)

		// Then: Budi, Santi, Dodi with ids 1..3, in that order
		require.NoError(t, err)
		require.Len(t, members, 3)
		assert.Equal(t, model.Member{ID: 1, Name: "Budi", Address: "Jakarta", PhoneNumber: "08231383934"}, members[0])
		assert.Equal(t, model.Member{ID: 2, Name: "Santi", Address: "Medan", PhoneNumber: "081325648565"}, members[1])
		assert.Equal(t, model.Member{ID: 3, Name: "Dodi", Address: "Surabaya", PhoneNumber: "08565548565"}, members[2])

		size, err := registry.Size(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, size)
	})
}

func TestNewMemberRegistry_NoSeed(t *testing.T) {
	registry, err := member.NewMemberRegistry(context.Background(), member.NewMemoryRepository(), false)
	require.NoError(t, err)

	members, err := registry.ListActive(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)

	// first id on an empty registry is 1
	result, err := registry.Add(context.Background(), member.NewMemberInput("Ani", "Bandung", "0811111111"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Member.ID)
}

func TestNewMemberRegistry_SeedSkippedWhenNotEmpty(t *testing.T) {
	ctx := context.Background()
	repo := member.NewMemoryRepository()
	require.NoError(t, repo.Create(ctx, model.NewMember(1, "Ani", "Bandung", "0811111111")))

	registry, err := member.NewMemberRegistry(ctx, repo, true)
	require.NoError(t, err)

	size, err := registry.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, size)
}

func TestFindByID(t *testing.T) {
	forEachRepository(t, func(t *testing.T, registry *member.MemberRegistry) {
		ctx := context.Background()

		result, err := registry.FindByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Member ID found", result.Message)
		assert.Equal(t, "Santi", result.Member.Name)

		for _, id := range []int{-1, 0, 4, 100} {
			_, err := registry.FindByID(ctx, id)
			requireFailure(t, err, member.ErrMemberNotFound, "Member ID not found")
		}
	})
}

func TestAdd(t *testing.T) {
	forEachRepository(t, func(t *testing.T, registry *member.MemberRegistry) {
		ctx := context.Background()

		// When: fields carry surrounding whitespace
		result, err := registry.Add(ctx, member.NewMemberInput("  Rina Wati ", " Bali ", "0812345678901"))

		// Then: stored trimmed with the next sequential id
		require.NoError(t, err)
		assert.Equal(t, "Member added successfully.", result.Message)
		assert.Equal(t, &model.Member{ID: 4, Name: "Rina Wati", Address: "Bali", PhoneNumber: "0812345678901"}, result.Member)

		found, err := registry.FindByID(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, result.Member, found.Member)
	})
}

func TestAdd_InvalidLeavesSizeUnchanged(t *testing.T) {
	forEachRepository(t, func(t *testing.T, registry *member.MemberRegistry) {
		ctx := context.Background()

		_, err := registry.Add(ctx, member.NewMemberInput("", "x", "1234567890"))
		requireFailure(t, err, member.ErrInvalidMember, "The value of `name` cannot be empty!")

		_, err = registry.Add(ctx, member.MemberInput{Name: ptr("Budi"), Address: ptr("Jakarta")})
		requireFailure(t, err, member.ErrInvalidMember, "The value of `phoneNumber` cannot be null!")

		size, err := registry.Size(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, size)
	})
}

func TestUpdateByID(t *testing.T) {
	forEachRepository(t, func(t *testing.T, registry *member.MemberRegistry) {
		ctx := context.Background()

		result, err := registry.UpdateByID(ctx, 1, member.NewMemberInput(" Budi Santoso ", "Bogor", "081298765432"))

		require.NoError(t, err)
		assert.Equal(t, "Member with ID `1` updated successfully.", result.Message)
		assert.Equal(t, &model.Member{ID: 1, Name: "Budi Santoso", Address: "Bogor", PhoneNumber: "081298765432"}, result.Member)

		found, err := registry.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, result.Member, found.Member)
	})
}

func TestUpdateByID_UnknownIDLeavesRecordsUnchanged(t *testing.T) {
	forEachRepository(t, func(t *testing.T, registry *member.MemberRegistry) {
		ctx := context.Background()
		before, err := registry.ListActive(ctx)
		require.NoError(t, err)

		for _, id := range []int{0, 4} {
			_, err := registry.UpdateByID(ctx, id, member.NewMemberInput("Budi", "Jakarta", "08231383934"))
			requireFailure(t, err, member.ErrMemberNotFound, fmt.Sprintf("Update failed. The ID `%d` does not exist.", id))
		}

		after, err := registry.ListActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestUpdateByID_UnknownIDWinsOverInvalidInput(t *testing.T) {
	registry, err := member.NewMemberRegistry(context.Background(), member.NewMemoryRepository(), true)
	require.NoError(t, err)

	_, err = registry.UpdateByID(context.Background(), 9, member.MemberInput{})
	requireFailure(t, err, member.ErrMemberNotFound, "Update failed. The ID `9` does not exist.")
}

func TestUpdateByID_InvalidPhoneIsNotPartiallyApplied(t *testing.T) {
	forEachRepository(t, func(t *testing.T, registry *member.MemberRegistry) {
		ctx := context.Background()

		testCases := []struct {
			phone   string
			message string
		}{
			{phone: "08abcdefgh", message: "The value of `phoneNumber` must be a number."},
			{phone: "12345", message: "The value of `phoneNumber` must be a number between 10 and 13."},
		}

		for _, tc := range testCases {
			_, err := registry.UpdateByID(ctx, 2, member.NewMemberInput("Changed", "Changed", tc.phone))
			requireFailure(t, err, member.ErrInvalidMember, tc.message)

			found, err := registry.FindByID(ctx, 2)
			require.NoError(t, err)
			assert.Equal(t, &model.Member{ID: 2, Name: "Santi", Address: "Medan", PhoneNumber: "081325648565"}, found.Member)
		}
	})
}

func TestDeleteByID_IsSoft(t *testing.T) {
	forEachRepository(t, func(t *testing.T, registry *member.MemberRegistry) {
		ctx := context.Background()

		// When
		result, err := registry.DeleteByID(ctx, 2)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "Member with ID `2` deleted successfully.", result.Message)
		assert.Nil(t, result.Member)

		_, err = registry.FindByID(ctx, 2)
		requireFailure(t, err, member.ErrMemberNotFound, "Member ID not found")

		members, err := registry.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, 1, members[0].ID)
		assert.Equal(t, 3, members[1].ID)

		size, err := registry.Size(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, size)

		// deleted members cannot be updated
		_, err = registry.UpdateByID(ctx, 2, member.NewMemberInput("Santi", "Medan", "081325648565"))
		requireFailure(t, err, member.ErrMemberNotFound, "Update failed. The ID `2` does not exist.")

		// ids are never reused
		added, err := registry.Add(ctx, member.NewMemberInput("Eka", "Padang", "0819999999"))
		require.NoError(t, err)
		assert.Equal(t, 4, added.Member.ID)
	})
}

func TestDeleteByID_Twice(t *testing.T) {
	forEachRepository(t, func(t *testing.T, registry *member.MemberRegistry) {
		ctx := context.Background()

		_, err := registry.DeleteByID(ctx, 3)
		require.NoError(t, err)

		_, err = registry.DeleteByID(ctx, 3)
		requireFailure(t, err, member.ErrMemberNotFound, "Delete failed. The ID `3` does not exist.")
	})
}

func TestAdd_ValidInputIsListedWithNextID(t *testing.T) {
	ctx := context.Background()
	registry, err := member.NewMemberRegistry(ctx, member.NewMemoryRepository(), true)
	require.NoError(t, err)

	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.StringMatching(`[a-zA-Z0-9]{1,12}( [a-zA-Z0-9]{1,12})?`).Draw(rt, "name")
		address := rapid.StringMatching(`[a-zA-Z0-9 ,.]{0,20}[a-zA-Z]`).Draw(rt, "address")
		phone := rapid.StringMatching(`[0-9]{10,13}`).Draw(rt, "phone")
		pad := rapid.SampledFrom([]string{"", " ", "\t", "  "}).Draw(rt, "pad")

		before, err := registry.Size(ctx)
		require.NoError(rt, err)

		result, err := registry.Add(ctx, member.NewMemberInput(pad+name+pad, pad+address, phone))
		require.NoError(rt, err)
		assert.Equal(rt, before+1, result.Member.ID)

		members, err := registry.ListActive(ctx)
		require.NoError(rt, err)
		last := members[len(members)-1]
		expected := model.Member{
			ID:          before + 1,
			Name:        name,
			Address:     strings.TrimSpace(address),
			PhoneNumber: phone,
		}
		assert.Equal(rt, expected, last)
	})
}

func TestAdd_NonNumericPhoneIsRejected(t *testing.T) {
	ctx := context.Background()
	registry, err := member.NewMemberRegistry(ctx, member.NewMemoryRepository(), true)
	require.NoError(t, err)

	rapid.Check(t, func(rt *rapid.T) {
		phone := rapid.StringMatching(`[0-9]{0,6}[a-zA-Z+\-.]{1,3}[0-9]{0,6}`).Draw(rt, "phone")

		_, err := registry.Add(ctx, member.NewMemberInput("Budi", "Jakarta", phone))
		require.Error(rt, err)
		message, ok := member.FailureMessage(err)
		require.True(rt, ok)
		assert.Equal(rt, "The value of `phoneNumber` must be a number.", message)

		size, err := registry.Size(ctx)
		require.NoError(rt, err)
		assert.Equal(rt, 3, size)
	})
}
