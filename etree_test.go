package qdldl

import "testing"

func TestComputeEtreeSimple(t *testing.T) {
	// A = [[4,1],[1,3]] upper-triangular CSC.
	colptr := []int{0, 1, 3}
	rowval := []int{0, 0, 1}
	et, ok := computeEtree(2, colptr, rowval)
	if !ok {
		t.Fatalf("computeEtree failed")
	}
	if et.parent[0] != 1 {
		t.Errorf("parent[0] = %d, want 1", et.parent[0])
	}
	if et.parent[1] != unknown {
		t.Errorf("parent[1] = %d, want unknown", et.parent[1])
	}
	if et.lnz[0] != 1 || et.lnz[1] != 0 {
		t.Errorf("lnz = %v, want [1 0]", et.lnz)
	}
	if et.nnzL != 1 {
		t.Errorf("nnzL = %d, want 1", et.nnzL)
	}
}

func TestComputeEtreeArrowhead(t *testing.T) {
	// 5x5 arrowhead: diag 2, dense last row/col. Upper-triangular CSC:
	// columns 0..3 each store (i,i)=2, (i,4)=1; column 4 stores all (i,4), i=0..4.
	n := 5
	var colptr []int
	var rowval []int
	var nzval []float64
	colptr = append(colptr, 0)
	for j := 0; j < 4; j++ {
		rowval = append(rowval, j)
		nzval = append(nzval, 2)
		colptr = append(colptr, len(rowval))
	}
	for i := 0; i < 4; i++ {
		rowval = append(rowval, i)
		nzval = append(nzval, 1)
	}
	rowval = append(rowval, 4)
	nzval = append(nzval, 2)
	colptr = append(colptr, len(rowval))

	et, ok := computeEtree(n, colptr, rowval)
	if !ok {
		t.Fatalf("computeEtree failed")
	}
	for i := 0; i < 4; i++ {
		if et.parent[i] != 4 {
			t.Errorf("parent[%d] = %d, want 4", i, et.parent[i])
		}
		if et.lnz[i] != 1 {
			t.Errorf("lnz[%d] = %d, want 1", i, et.lnz[i])
		}
	}
	if et.parent[4] != unknown {
		t.Errorf("parent[4] = %d, want unknown", et.parent[4])
	}
	if et.lnz[4] != 0 {
		t.Errorf("lnz[4] = %d, want 0", et.lnz[4])
	}
}

func TestComputeEtreeEmptyColumn(t *testing.T) {
	// column 0 has no stored entries at all.
	colptr := []int{0, 0, 1}
	rowval := []int{1}
	_, ok := computeEtree(2, colptr, rowval)
	if ok {
		t.Fatalf("expected computeEtree to fail on empty column")
	}
}

func TestComputeEtreeNotUpperTriangular(t *testing.T) {
	// column 0 stores row 1, which is below the diagonal.
	colptr := []int{0, 1, 2}
	rowval := []int{1, 1}
	_, ok := computeEtree(2, colptr, rowval)
	if ok {
		t.Fatalf("expected computeEtree to fail on non-upper-triangular input")
	}
}
