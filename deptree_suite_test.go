package rc

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// DeptreeSuite exercises the full build, cache and query cycle against one
// realistic service layout.
type DeptreeSuite struct {
	suite.Suite
	rc   *RC
	tree *Deptree
}

func TestDeptreeSuite(t *testing.T) {
	suite.Run(t, new(DeptreeSuite))
}

func (s *DeptreeSuite) SetupTest() {
	r, err := New(s.T().TempDir())
	require.NoError(s.T(), err)
	require.NoError(s.T(), r.EnsureLayout())
	s.rc = r

	installService(s.T(), r, "udev")
	installService(s.T(), r, "net", "ineed udev", "iprovide network")
	installService(s.T(), r, "logger", "iafter udev")
	installService(s.T(), r, "sshd", "ineed network", "iuse logger")
	installService(s.T(), r, "nginx", "ineed network", "iafter sshd")

	addToRunlevel(s.T(), r, LevelSysinit, "udev")
	addToRunlevel(s.T(), r, "default", "net", "logger", "sshd", "nginx")

	updated, err := r.UpdateDeptree(false)
	require.NoError(s.T(), err)
	require.True(s.T(), updated)

	s.tree, err = r.LoadDeptree()
	require.NoError(s.T(), err)
}

func (s *DeptreeSuite) TestProvideRewriteSurvivesCache() {
	dt := s.tree.Depinfo("sshd").Deptype(DepIneed)
	require.NotNil(s.T(), dt)
	require.Equal(s.T(), []string{"net"}, dt.Services)
}

func (s *DeptreeSuite) TestReverseBucketsSurviveCache() {
	dt := s.tree.Depinfo("net").Deptype(DepNeedsme)
	require.NotNil(s.T(), dt)
	require.ElementsMatch(s.T(), []string{"sshd", "nginx"}, dt.Services)
}

func (s *DeptreeSuite) TestOrderForDefault() {
	order, err := s.rc.OrderServices(s.tree, "default", DepStart|DepTrace)
	require.NoError(s.T(), err)

	pos := make(map[string]int, len(order))
	for i, svc := range order {
		pos[svc] = i
	}
	require.Contains(s.T(), pos, "udev")
	require.Contains(s.T(), pos, "nginx")
	require.Less(s.T(), pos["udev"], pos["net"], "udev must precede net")
	require.Less(s.T(), pos["net"], pos["sshd"], "net must precede sshd")
	require.Less(s.T(), pos["sshd"], pos["nginx"], "sshd must precede nginx")
}

func (s *DeptreeSuite) TestCacheIsDeterministic() {
	first, err := s.rc.BuildDeptree()
	require.NoError(s.T(), err)
	second, err := s.rc.BuildDeptree()
	require.NoError(s.T(), err)
	require.True(s.T(), first.Equal(second), "two builds over the same scripts must agree")
}

func (s *DeptreeSuite) TestGetDependsAcrossCache() {
	deps := s.rc.GetDepends(s.tree, []string{DepIneed}, []string{"nginx"}, "default", DepTrace)
	require.Equal(s.T(), []string{"net", "udev"}, deps)
}
