package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/DRSN-tech/kitchen-backend/internal/cfg"
	"github.com/DRSN-tech/kitchen-backend/internal/domain"
	"github.com/DRSN-tech/kitchen-backend/internal/proto"
	"github.com/DRSN-tech/kitchen-backend/internal/usecase"
	"github.com/DRSN-tech/kitchen-backend/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type seedMenu struct{}

func (seedMenu) Menu(_ context.Context, category domain.Category) (*usecase.CategoryView, error) {
	return usecase.NewCategoryView(category, domain.InitialCatalog().Items(category)), nil
}

func startTestServer(t *testing.T) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := NewGRPCServer(&cfg.GRPCConfig{NetworkMode: "tcp"}, logger.Nop())
	srv.RegisterServices(seedMenu{})

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(func() {
		_ = srv.Stop(context.Background())
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestMenuService_GetMenu(t *testing.T) {
	client := proto.NewMenuServiceClient(startTestServer(t))

	res, err := client.GetMenu(context.Background(), &proto.GetMenuRequest{Category: "Breakfast"})
	if err != nil {
		t.Fatalf("GetMenu: %v", err)
	}

	if res.GetCategory() != "breakfast" {
		t.Errorf("category = %q", res.GetCategory())
	}
	if res.GetAveragePrice() != "10.74" {
		t.Errorf("average_price = %q, want 10.74", res.GetAveragePrice())
	}

	items := res.GetItems()
	if len(items) != 4 {
		t.Fatalf("items = %d, want 4", len(items))
	}
	if items[1].GetName() != "Avocado Toast" || items[1].GetPrice() != "10.99" || items[1].GetId() != 2 {
		t.Errorf("unexpected second item %v", items[1])
	}
	if items[1].GetCategory() != "breakfast" || items[1].GetImage() != "🥑" {
		t.Errorf("second item lost fields: %v", items[1])
	}

	healthy, err := client.GetMenu(context.Background(), &proto.GetMenuRequest{Category: "healthy"})
	if err != nil {
		t.Fatalf("GetMenu healthy: %v", err)
	}
	first := healthy.GetItems()[0]
	if first.GetIntensity() == "" || len(first.GetIngredients()) == 0 {
		t.Errorf("healthy item lost intensity or ingredients: %v", first)
	}
}

func TestMenuService_GetMenuUnknownCategory(t *testing.T) {
	client := proto.NewMenuServiceClient(startTestServer(t))

	_, err := client.GetMenu(context.Background(), &proto.GetMenuRequest{Category: "brunch"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestHealth(t *testing.T) {
	client := healthpb.NewHealthClient(startTestServer(t))

	res, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: proto.MenuService_ServiceDesc.ServiceName})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if res.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("status = %v, want SERVING", res.GetStatus())
	}
}
