// Command seed populates the database with a fixed set of sample rooms and
// members.  Each table is only filled when it is currently empty, so the
// utility can be re-run safely.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/svce/hostel-management/internal/config"
	"github.com/svce/hostel-management/internal/database"
	"github.com/svce/hostel-management/internal/repository"
)

var sampleRooms = []repository.Room{
	{RoomNumber: "101", Capacity: 2, RoomType: "Single", PricePerMonth: 250.00},
	{RoomNumber: "102", Capacity: 2, RoomType: "Single", PricePerMonth: 250.00},
	{RoomNumber: "201", Capacity: 3, RoomType: "Double", PricePerMonth: 350.00},
	{RoomNumber: "202", Capacity: 3, RoomType: "Double", PricePerMonth: 350.00},
	{RoomNumber: "301", Capacity: 4, RoomType: "Dormitory", PricePerMonth: 200.00},
	{RoomNumber: "302", Capacity: 4, RoomType: "Dormitory", PricePerMonth: 200.00},
}

var sampleMembers = []repository.Member{
	{Name: "John Doe", Email: "john@example.com", Phone: "555-1234", RoomID: 1, EmergencyContact: "Jane Doe (Mother) 555-5678"},
	{Name: "Jane Smith", Email: "jane@example.com", Phone: "555-4321", RoomID: 2, EmergencyContact: "John Smith (Father) 555-8765"},
	{Name: "Mike Johnson", Email: "mike@example.com", Phone: "555-6789", RoomID: 3, EmergencyContact: "Lisa Johnson (Sister) 555-9876"},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	fmt.Println("Adding sample data to the Hostel Management System...")

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.InitSchema(ctx, db); err != nil {
		log.Fatalf("init schema: %v", err)
	}

	rooms := repository.NewRoomRepo(db)
	members := repository.NewMemberRepo(db)

	roomCount, err := rooms.Count(ctx)
	if err != nil {
		log.Fatalf("count rooms: %v", err)
	}
	if roomCount == 0 {
		for i := range sampleRooms {
			if err := rooms.Create(ctx, &sampleRooms[i]); err != nil {
				log.Fatalf("insert sample room %s: %v", sampleRooms[i].RoomNumber, err)
			}
		}
		fmt.Printf("Added %d sample rooms to the database.\n", len(sampleRooms))
	} else {
		fmt.Printf("Rooms already exist in the database (%d rooms found).\n", roomCount)
	}

	memberCount, err := members.Count(ctx)
	if err != nil {
		log.Fatalf("count members: %v", err)
	}
	if memberCount == 0 {
		// Member creation increments the room occupancy, so the counters
		// stay consistent with the inserted members.
		for i := range sampleMembers {
			if err := members.Create(ctx, &sampleMembers[i]); err != nil {
				log.Fatalf("insert sample member %s: %v", sampleMembers[i].Name, err)
			}
		}
		fmt.Printf("Added %d sample members to the database.\n", len(sampleMembers))
	} else {
		fmt.Printf("Members already exist in the database (%d members found).\n", memberCount)
	}

	fmt.Println("Sample data added successfully!")
}
